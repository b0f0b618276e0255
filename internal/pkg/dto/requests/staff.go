package requests

type StaffFilter struct {
	StaffType string `validate:"required,oneof=doctor assistant"`
}

type CreateStaff struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,digits"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=doctor assistant"`
	Salary      string `json:"salary" validate:"omitempty,numeric"`
	Percentage  string `json:"percentage,omitempty" validate:"omitempty,numeric"`
	Specialty   string `json:"specialty,omitempty"`
}

type UpdateStaff struct {
	StaffID     string `json:"staff_id"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,digits"`
	Salary      string `json:"salary,omitempty" validate:"omitempty,numeric"`
	Percentage  string `json:"percentage,omitempty" validate:"omitempty,numeric"`
	Specialty   string `json:"specialty,omitempty"`
}
