package requests

type AppointmentFilter struct {
	Status string `validate:"omitempty,oneof=scheduled completed cancelled"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
}

// CreateAppointment is the dashboard form. Date and Time are joined into the
// backend's "time" field.
type CreateAppointment struct {
	PatientID   string `json:"patient_id" validate:"required"`
	DoctorID    string `json:"doctor_id" validate:"required"`
	AssistantID string `json:"assistant_id"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Status      string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Description string `json:"description"`
}

type UpdateAppointment struct {
	AppointmentID string `json:"-"`
	DoctorID      string `json:"doctor_id"`
	AssistantID   string `json:"assistant_id"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required,datetime=15:04"`
	Status        string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
	Description   string `json:"description"`
}
