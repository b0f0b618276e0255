package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	LoginSuccess          = "successfully login"
	LogoutSuccess         = "successfully logout"
	RegisterSuccess       = "registration successful, please verify your account"
	VerifySuccess         = "account verified successfully"
	ForgotPasswordSuccess = "reset password link already sent to your email"

	AccessResolvedSuccessfully = "access resolved successfully"
	GetDashboardSuccessfully   = "get dashboard successfully"

	GetAppointmentsSuccessfully   = "get appointments successfully"
	GetAppointmentSuccessfully    = "get appointment successfully"
	CreateAppointmentSuccessfully = "appointment created successfully"
	UpdateAppointmentSuccessfully = "appointment updated successfully"
	DeleteAppointmentSuccessfully = "appointment deleted successfully"
	GetFormOptionsSuccessfully    = "get form options successfully"

	GetPatientsSuccessfully      = "get patients successfully"
	GetPatientSuccessfully       = "get patient successfully"
	CreatePatientSuccessfully    = "patient created successfully"
	UpdatePatientSuccessfully    = "patient updated successfully"
	DeletePatientSuccessfully    = "patient deleted successfully"
	UploadAttachmentSuccessfully = "attachment uploaded successfully"
	DeleteAttachmentSuccessfully = "attachment deleted successfully"

	GetStaffSuccessfully    = "get staff successfully"
	CreateStaffSuccessfully = "staff created successfully"
	UpdateStaffSuccessfully = "staff updated successfully"
	DeleteStaffSuccessfully = "staff deleted successfully"

	GetServicesSuccessfully   = "get services successfully"
	GetServiceSuccessfully    = "get service successfully"
	CreateServiceSuccessfully = "service created successfully"
	UpdateServiceSuccessfully = "service updated successfully"
	DeleteServiceSuccessfully = "service deleted successfully"

	GetClinicSuccessfully          = "get clinic successfully"
	GetClinicsSuccessfully         = "get clinics successfully"
	CreateClinicSuccessfully       = "clinic created successfully"
	ToggleClinicStatusSuccessfully = "clinic status updated successfully"

	GetSubscriptionOverviewSuccessfully     = "get subscription overview successfully"
	RequestPlanChangeSuccessfully           = "plan change requested successfully"
	GetPlansSuccessfully                    = "get subscription plans successfully"
	GetPlanSuccessfully                     = "get subscription plan successfully"
	SavePlanSuccessfully                    = "subscription plan saved successfully"
	GetSubscriptionRequestsSuccessfully     = "get subscription requests successfully"
	ActivateSubscriptionRequestSuccessfully = "subscription request activated successfully"
	GetPaymentsOverviewSuccessfully         = "get payments overview successfully"
)
