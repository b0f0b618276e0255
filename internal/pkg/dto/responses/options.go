package responses

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type AppointmentFormOptions struct {
	Patients   []Option `json:"patients"`
	Doctors    []Option `json:"doctors"`
	Assistants []Option `json:"assistants"`
}

type PatientFormOptions struct {
	Doctors    []Option `json:"doctors"`
	Assistants []Option `json:"assistants"`
}
