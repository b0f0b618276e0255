package appointments

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"net/url"

	"go.uber.org/zap"
)

type appointmentBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewAppointmentBackendClient(client *backend.Client, logger *zap.Logger) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *appointmentBackendClient) FindAll(ctx context.Context, status, date string) (*models.Page[models.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLQueryParamStatus, status),
		zap.String(constvars.URLQueryParamDate, date),
	)

	query := url.Values{}
	if status != "" {
		query.Set(constvars.URLQueryParamStatus, status)
	}
	if date != "" {
		query.Set(constvars.URLQueryParamDate, date)
	}

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointAppointments,
		Query:    query,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodePage[models.Appointment](body, constvars.ResourceAppointment, "appointments")
}

func (c *appointmentBackendClient) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointAppointments + url.PathEscape(appointmentID),
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodeObject[models.Appointment](body, constvars.ResourceAppointment)
}

func (c *appointmentBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error) {
	return c.save(ctx, constvars.MethodPost, payload)
}

// Update sends a PUT to the collection; the appointment is identified by
// appointment_id inside the payload.
func (c *appointmentBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error) {
	return c.save(ctx, constvars.MethodPut, payload)
}

func (c *appointmentBackendClient) save(ctx context.Context, method string, payload map[string]interface{}) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   method,
		Endpoint: constvars.EndpointAppointments,
		Body:     payload,
		Resource: constvars.ResourceAppointment,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return &models.Appointment{}, nil
	}
	return backend.DecodeObject[models.Appointment](body, constvars.ResourceAppointment)
}

func (c *appointmentBackendClient) Delete(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryAppointmentID, appointmentID)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointAppointments,
		Query:    query,
		Resource: constvars.ResourceAppointment,
	}, nil)
}
