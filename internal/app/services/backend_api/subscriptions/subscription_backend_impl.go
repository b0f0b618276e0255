package subscriptions

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"errors"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type subscriptionBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewSubscriptionBackendClient(client *backend.Client, logger *zap.Logger) contracts.SubscriptionBackendClient {
	return &subscriptionBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *subscriptionBackendClient) FindCurrent(ctx context.Context) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.FindCurrent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointSubscription,
		Resource: constvars.ResourceSubscription,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return json.RawMessage(`[]`), nil
	}
	if !json.Valid(body) {
		return nil, exceptions.ErrDecodeResponse(errors.New("subscription payload is not json"), constvars.ResourceSubscription)
	}
	return json.RawMessage(body), nil
}

func (c *subscriptionBackendClient) RequestPlanChange(ctx context.Context, payload map[string]interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.RequestPlanChange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointSubscription,
		Body:     payload,
		Resource: constvars.ResourceSubscription,
	}, nil)
}

func (c *subscriptionBackendClient) FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.FindAllPlans called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointSubscriptionPlans,
		Resource: constvars.ResourceSubscriptionPlan,
	})
	if err != nil {
		return nil, err
	}

	page, err := backend.DecodePage[models.SubscriptionPlan](body, constvars.ResourceSubscriptionPlan, "plans")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *subscriptionBackendClient) FindPlanByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.FindPlanByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointSubscriptionPlans + url.PathEscape(planID),
		Resource: constvars.ResourceSubscriptionPlan,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodeObject[models.SubscriptionPlan](body, constvars.ResourceSubscriptionPlan)
}

func (c *subscriptionBackendClient) CreatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	return c.savePlan(ctx, constvars.MethodPost, payload)
}

// UpdatePlan identifies the plan by subscription_plan_id inside the payload.
func (c *subscriptionBackendClient) UpdatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	return c.savePlan(ctx, constvars.MethodPut, payload)
}

func (c *subscriptionBackendClient) savePlan(ctx context.Context, method string, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.savePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   method,
		Endpoint: constvars.EndpointSubscriptionPlans,
		Body:     payload,
		Resource: constvars.ResourceSubscriptionPlan,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return &models.SubscriptionPlan{}, nil
	}
	return backend.DecodeObject[models.SubscriptionPlan](body, constvars.ResourceSubscriptionPlan)
}

func (c *subscriptionBackendClient) FindAllRequests(ctx context.Context) ([]models.SubscriptionRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.FindAllRequests called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointSubscriptionRequests,
		Resource: constvars.ResourceSubscriptionRequest,
	})
	if err != nil {
		return nil, err
	}

	page, err := backend.DecodePage[models.SubscriptionRequest](body, constvars.ResourceSubscriptionRequest, "requests")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *subscriptionBackendClient) ActivateRequest(ctx context.Context, request *requests.ActivateSubscriptionRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("subscriptionBackendClient.ActivateRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subscription_request_id", request.SubscriptionRequestID),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPut,
		Endpoint: constvars.EndpointSubscriptionRequests,
		Body:     request,
		Resource: constvars.ResourceSubscriptionRequest,
	}, nil)
}
