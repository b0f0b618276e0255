package responses

import (
	"dentflow-service/internal/app/models"

	"github.com/goccy/go-json"
)

type SubscriptionOverview struct {
	Plans               []models.SubscriptionPlan `json:"plans"`
	CurrentSubscription json.RawMessage           `json:"current_subscription,omitempty"`
}

type PaymentsOverview struct {
	Plans    []models.SubscriptionPlan    `json:"plans"`
	Requests []models.SubscriptionRequest `json:"requests"`
}
