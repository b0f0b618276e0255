package constvars

// Paths on the clinic REST API, relative to BACKEND_BASE_URL.
const (
	EndpointLogin                = "core/login/"
	EndpointRegister             = "core/register/"
	EndpointForgetPassword       = "core/forget_password/"
	EndpointVerifyCode           = "core/verify/"
	EndpointClinic               = "core/clinic/"
	EndpointClinicsAll           = "core/clinics/"
	EndpointAllStaff             = "core/staff/all/"
	EndpointStaff                = "core/staff/"
	EndpointAddUser              = "core/add_user/"
	EndpointPatients             = "patients/"
	EndpointPatientAttachments   = "patients/attach/"
	EndpointAppointments         = "appointments/"
	EndpointServices             = "services/"
	EndpointSubscription         = "subscriptions/"
	EndpointSubscriptionPlans    = "subscriptions/plans/"
	EndpointSubscriptionRequests = "subscriptions/requests/"
)

const (
	ResourceAuth                = "auth"
	ResourceClinic              = "clinic"
	ResourceStaff               = "staff"
	ResourcePatient             = "patient"
	ResourcePatientAttachment   = "patient attachment"
	ResourceAppointment         = "appointment"
	ResourceService             = "service"
	ResourceSubscription        = "subscription"
	ResourceSubscriptionPlan    = "subscription plan"
	ResourceSubscriptionRequest = "subscription request"
)

const (
	BackendQueryAppointmentID        = "appointment_id"
	BackendQueryPatientID            = "patient_id"
	BackendQueryAttachmentID         = "attachment_id"
	BackendQueryStaffID              = "staff_id"
	BackendQueryServiceID            = "service_id"
	BackendQueryStaffType            = "staff"
	BackendQueryEmail                = "email"
	BackendQueryAuthCode             = "auth_code"
	BackendQueryPage                 = "page"
	BackendQueryPerPage              = "per_page"
	BackendMultipartPatientID        = "patient_id"
	BackendMultipartAttachmentsField = "attachments"
)
