package models

type Appointment struct {
	ID              FlexString `json:"id"`
	AppointmentTime string     `json:"appointment_time"`
	Status          string     `json:"status"`
	Description     string     `json:"description"`
	Clinic          FlexString `json:"clinic"`
	Patient         FlexString `json:"patient"`
	Doctor          FlexString `json:"doctor"`
	Assistant       FlexString `json:"assistant"`
}
