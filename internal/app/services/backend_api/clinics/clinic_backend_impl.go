package clinics

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

type clinicBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewClinicBackendClient(client *backend.Client, logger *zap.Logger) contracts.ClinicBackendClient {
	return &clinicBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *clinicBackendClient) FindOwnClinic(ctx context.Context) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicBackendClient.FindOwnClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointClinic,
		Resource: constvars.ResourceClinic,
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, exceptions.ErrDecodeResponse(errors.New("clinic payload is not json"), constvars.ResourceClinic)
	}
	return json.RawMessage(body), nil
}

func (c *clinicBackendClient) CreateClinic(ctx context.Context, request *requests.CreateClinic) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicBackendClient.CreateClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointClinic,
		Body:     request,
		Resource: constvars.ResourceClinic,
	})
	if err != nil {
		c.Log.Error("clinicBackendClient.CreateClinic error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(body) == 0 || !json.Valid(body) {
		return json.RawMessage(`{}`), nil
	}
	return json.RawMessage(body), nil
}

func (c *clinicBackendClient) FindAll(ctx context.Context, name string) ([]models.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if name != "" {
		query.Set(constvars.URLQueryParamName, name)
	}

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointClinicsAll,
		Query:    query,
		Resource: constvars.ResourceClinic,
	})
	if err != nil {
		return nil, err
	}

	page, err := backend.DecodePage[models.Clinic](body, constvars.ResourceClinic, "clinics")
	if err != nil {
		return nil, err
	}

	c.Log.Info("clinicBackendClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(page.Items)),
	)
	return page.Items, nil
}

// ToggleClinicStatus flips the disabled flag. The backend exposes this as a
// DELETE on the clinic resource; nothing is removed.
func (c *clinicBackendClient) ToggleClinicStatus(ctx context.Context, clinicID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("clinicBackendClient.ToggleClinicStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointClinic + url.PathEscape(clinicID),
		Resource: constvars.ResourceClinic,
	}, nil)
}
