package services

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type serviceBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewServiceBackendClient(client *backend.Client, logger *zap.Logger) contracts.ServiceBackendClient {
	return &serviceBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *serviceBackendClient) FindAll(ctx context.Context, filter *requests.ServiceFilter) (*models.Page[models.Service], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any("filter", filter),
	)

	query := url.Values{}
	if filter.Search != "" {
		query.Set(constvars.URLQueryParamSearch, filter.Search)
	}
	if filter.Category != "" {
		query.Set(constvars.URLQueryParamCategory, filter.Category)
	}
	if filter.Page > 0 {
		query.Set(constvars.BackendQueryPage, strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set(constvars.BackendQueryPerPage, strconv.Itoa(filter.PageSize))
	}

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointServices,
		Query:    query,
		Resource: constvars.ResourceService,
	})
	if err != nil {
		return nil, err
	}

	page, err := backend.DecodePage[models.Service](body, constvars.ResourceService, "services")
	if err != nil {
		return nil, err
	}
	if filter.Page > 0 {
		page.Page = filter.Page
	}
	return page, nil
}

func (c *serviceBackendClient) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointServices + url.PathEscape(serviceID),
		Resource: constvars.ResourceService,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodeObject[models.Service](body, constvars.ResourceService)
}

func (c *serviceBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Service, error) {
	return c.save(ctx, constvars.MethodPost, payload)
}

func (c *serviceBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Service, error) {
	return c.save(ctx, constvars.MethodPut, payload)
}

func (c *serviceBackendClient) save(ctx context.Context, method string, payload map[string]interface{}) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceBackendClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   method,
		Endpoint: constvars.EndpointServices,
		Body:     payload,
		Resource: constvars.ResourceService,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return &models.Service{}, nil
	}
	return backend.DecodeObject[models.Service](body, constvars.ResourceService)
}

func (c *serviceBackendClient) Delete(ctx context.Context, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("serviceBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryServiceID, serviceID)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointServices,
		Query:    query,
		Resource: constvars.ResourceService,
	}, nil)
}
