package constvars

// Activity event names published to the activity queue.
const (
	EventClinicStatusToggled   = "clinic.status_toggled"
	EventClinicCreated         = "clinic.created"
	EventPlanChangeRequested   = "subscription.plan_change_requested"
	EventSubscriptionActivated = "subscription.request_activated"
	EventPlanSaved             = "subscription.plan_saved"
)
