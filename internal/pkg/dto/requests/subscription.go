package requests

type RequestPlanChange struct {
	ClinicID           string `json:"clinic_id"`
	SubscriptionPlanID string `json:"subscription_plan_id" validate:"required"`
	Amount             string `json:"amount" validate:"required,numeric"`
}

type SavePlan struct {
	SubscriptionPlanID string `json:"subscription_plan_id,omitempty"`
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description"`
	PriceMonthly       string `json:"price_monthly" validate:"required,numeric"`
	PriceYearly        string `json:"price_yearly" validate:"required,numeric"`
	MaxDoctors         int    `json:"max_doctors" validate:"gte=0"`
	MaxAssistants      int    `json:"max_assistants" validate:"gte=0"`
	MaxPatients        int    `json:"max_patients" validate:"gte=0"`
	IsActive           bool   `json:"is_active"`
}

type ActivateSubscriptionRequest struct {
	SubscriptionRequestID string `json:"subscription_request_id"`
	StartDate             string `json:"start_date" validate:"required,datetime=2006-01-02"`
	RenewType             string `json:"renew_type" validate:"required,oneof=free_trial monthly yearly"`
}
