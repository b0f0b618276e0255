package models

type Patient struct {
	ID          FlexString   `json:"id"`
	Name        string       `json:"name"`
	Gender      string       `json:"gender"`
	PhoneNumber string       `json:"phone_number"`
	BirthDate   string       `json:"birth_date"`
	Doctor      FlexString   `json:"doctor"`
	Assistant   FlexString   `json:"assistant"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	ID        FlexString `json:"id"`
	File      string     `json:"file"`
	CreatedAt string     `json:"created_at,omitempty"`
}
