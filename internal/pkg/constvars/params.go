package constvars

const (
	URLParamClinicID      = "clinic_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
	URLParamServiceID     = "service_id"
	URLParamStaffID       = "staff_id"
	URLParamPlanID        = "plan_id"
	URLParamAttachmentID  = "attachment_id"
	URLParamStaffType     = "staff_type"
	URLParamRequestID     = "request_id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamName     = "name"
	URLQueryParamStatus   = "status"
	URLQueryParamDate     = "date"
	URLQueryParamCategory = "category"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamConfirm  = "confirm"
	URLQueryParamEmail    = "email"
	URLQueryParamAuthCode = "auth_code"
)

const (
	MultipartFieldAttachment = "attachment"
)
