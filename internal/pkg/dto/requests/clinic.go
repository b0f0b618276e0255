package requests

type CreateClinic struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required,digits,min=10"`
}

type ClinicFilter struct {
	Name string
}
