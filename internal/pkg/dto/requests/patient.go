package requests

type PatientFilter struct {
	Search string
}

type CreatePatient struct {
	Name        string `json:"name" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	PhoneNumber string `json:"phone_number" validate:"required,digits"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02,notfuture"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	AssistantID string `json:"assistant_id"`
}

type UpdatePatient struct {
	PatientID   string `json:"-"`
	Name        string `json:"name" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	PhoneNumber string `json:"phone_number" validate:"required,digits"`
	BirthDate   string `json:"birth_date" validate:"required,datetime=2006-01-02,notfuture"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	AssistantID string `json:"assistant_id"`
}

// UploadAttachment carries a single file streamed through to the backend.
type UploadAttachment struct {
	PatientID   string
	FileName    string
	ContentType string
	Content     []byte
}
