package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type SubscriptionUsecase interface {
	GetOverview(ctx context.Context, session *models.Session) (*responses.SubscriptionOverview, error)
	RequestPlanChange(ctx context.Context, session *models.Session, request *requests.RequestPlanChange) (*responses.NextStep, error)
	FindAllPlans(ctx context.Context, session *models.Session) ([]models.SubscriptionPlan, error)
	FindPlanByID(ctx context.Context, session *models.Session, planID string) (*models.SubscriptionPlan, error)
	SavePlan(ctx context.Context, session *models.Session, request *requests.SavePlan) (*models.SubscriptionPlan, error)
	FindAllRequests(ctx context.Context, session *models.Session) ([]models.SubscriptionRequest, error)
	ActivateRequest(ctx context.Context, session *models.Session, request *requests.ActivateSubscriptionRequest) error
	GetPaymentsOverview(ctx context.Context, session *models.Session) (*responses.PaymentsOverview, error)
}

type SubscriptionBackendClient interface {
	// FindCurrent returns the raw subscription payload, whose shape varies.
	FindCurrent(ctx context.Context) (json.RawMessage, error)
	RequestPlanChange(ctx context.Context, payload map[string]interface{}) error
	FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	FindPlanByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error)
	FindAllRequests(ctx context.Context) ([]models.SubscriptionRequest, error)
	ActivateRequest(ctx context.Context, request *requests.ActivateSubscriptionRequest) error
}
