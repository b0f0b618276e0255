package staff

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"net/url"

	"go.uber.org/zap"
)

type staffBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewStaffBackendClient(client *backend.Client, logger *zap.Logger) contracts.StaffBackendClient {
	return &staffBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *staffBackendClient) FindAll(ctx context.Context, staffType string) (*models.Page[models.StaffMember], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("staffBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("staff_type", staffType),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryStaffType, staffType)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointAllStaff,
		Query:    query,
		Resource: constvars.ResourceStaff,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodePage[models.StaffMember](body, constvars.ResourceStaff, "staff")
}

// Create registers a new staff account through the add-user endpoint.
func (c *staffBackendClient) Create(ctx context.Context, request *requests.CreateStaff) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("staffBackendClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointAddUser,
		Body:     request,
		Resource: constvars.ResourceStaff,
	}, nil)
}

func (c *staffBackendClient) Update(ctx context.Context, request *requests.UpdateStaff) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("staffBackendClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPut,
		Endpoint: constvars.EndpointStaff,
		Body:     request,
		Resource: constvars.ResourceStaff,
	}, nil)
}

func (c *staffBackendClient) Delete(ctx context.Context, staffID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("staffBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryStaffID, staffID)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointStaff,
		Query:    query,
		Resource: constvars.ResourceStaff,
	}, nil)
}
