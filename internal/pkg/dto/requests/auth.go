package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phone_number" validate:"required,digits,min=10"`
}

type VerifyAccount struct {
	Email    string `json:"email" validate:"required,email"`
	AuthCode string `json:"auth_code" validate:"required"`
}

type ForgetPassword struct {
	Email string `json:"email" validate:"required,email"`
}
