package patients

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

type patientBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewPatientBackendClient(client *backend.Client, logger *zap.Logger) contracts.PatientBackendClient {
	return &patientBackendClient{
		Client: client,
		Log:    logger,
	}
}

func (c *patientBackendClient) FindAll(ctx context.Context, search string) (*models.Page[models.Patient], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if search != "" {
		query.Set(constvars.URLQueryParamSearch, search)
	}

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointPatients,
		Query:    query,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodePage[models.Patient](body, constvars.ResourcePatient, "patients")
}

func (c *patientBackendClient) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", patientID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointPatients + url.PathEscape(patientID),
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		return nil, err
	}
	return backend.DecodeObject[models.Patient](body, constvars.ResourcePatient)
}

func (c *patientBackendClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Patient, error) {
	return c.save(ctx, constvars.MethodPost, payload)
}

func (c *patientBackendClient) Update(ctx context.Context, payload map[string]interface{}) (*models.Patient, error) {
	return c.save(ctx, constvars.MethodPut, payload)
}

func (c *patientBackendClient) save(ctx context.Context, method string, payload map[string]interface{}) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   method,
		Endpoint: constvars.EndpointPatients,
		Body:     payload,
		Resource: constvars.ResourcePatient,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return &models.Patient{}, nil
	}
	return backend.DecodeObject[models.Patient](body, constvars.ResourcePatient)
}

func (c *patientBackendClient) Delete(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", patientID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryPatientID, patientID)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointPatients,
		Query:    query,
		Resource: constvars.ResourcePatient,
	}, nil)
}

func (c *patientBackendClient) UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", request.PatientID),
		zap.Int("size", len(request.Content)),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointPatientAttachments,
		Multipart: &backend.MultipartFile{
			Fields:      map[string]string{constvars.BackendMultipartPatientID: request.PatientID},
			FieldName:   constvars.BackendMultipartAttachmentsField,
			FileName:    request.FileName,
			ContentType: request.ContentType,
			Content:     request.Content,
		},
		Resource: constvars.ResourcePatientAttachment,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return &models.Attachment{}, nil
	}
	return backend.DecodeObject[models.Attachment](body, constvars.ResourcePatientAttachment)
}

func (c *patientBackendClient) DeleteAttachment(ctx context.Context, attachmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientBackendClient.DeleteAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryAttachmentID, attachmentID)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodDelete,
		Endpoint: constvars.EndpointPatientAttachments,
		Query:    query,
		Resource: constvars.ResourcePatientAttachment,
	}, nil)
}
