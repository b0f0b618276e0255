package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_ACCESS_DECISION_KEY      ContextKey = "access_decision"
)

const (
	REQUEST_ID_PREFIX = "DNTFLW_SVC_"
)

// SessionKeyPrefix is the fixed storage key the dashboard session lives under.
const SessionKeyPrefix = "dentflow_auth"

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RoleSuperadmin = "superadmin"
	RoleOwner      = "owner"
	RoleDoctor     = "doctor"
	RoleAssistant  = "assistant"
)

const (
	RedirectLogin        = "/login"
	RedirectVerify       = "/verify"
	RedirectSetupClinic  = "/setup-clinic"
	RedirectChoosePlan   = "/choose-plan"
	RedirectWaitingState = "/waiting-state"
	RedirectDashboard    = "/dashboard"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	StaffTypeDoctor    = "doctor"
	StaffTypeAssistant = "assistant"
)

const (
	RenewTypeFreeTrial = "free_trial"
	RenewTypeMonthly   = "monthly"
	RenewTypeYearly    = "yearly"
)

const (
	DateLayout            = "2006-01-02"
	AppointmentTimeLayout = "2006-01-02 15:04:05"
)

// Message the backend returns for accounts that still need e-mail verification.
const BackendAccountNotActiveMessage = "Your account is not active. Please activate your account to continue."

// Access gate states.
const (
	AccessStateUnauthenticated     = "unauthenticated"
	AccessStateChecking            = "checking"
	AccessStateNoClinic            = "no-clinic"
	AccessStateNoSubscription      = "no-subscription"
	AccessStatePendingSubscription = "pending-subscription"
	AccessStateActive              = "active"
)

const (
	DashboardViewPlatform    = "platform"
	DashboardViewClinicOwner = "clinic-owner"
	DashboardViewClinical    = "clinical"
)
