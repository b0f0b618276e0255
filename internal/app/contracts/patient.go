package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context, session *models.Session, filter *requests.PatientFilter) (*models.Page[models.Patient], error)
	FindByID(ctx context.Context, session *models.Session, patientID string) (*models.Patient, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error)
	Update(ctx context.Context, session *models.Session, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, session *models.Session, patientID string) error
	UploadAttachment(ctx context.Context, session *models.Session, request *requests.UploadAttachment) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, session *models.Session, attachmentID string) error
	FormOptions(ctx context.Context, session *models.Session) (*responses.PatientFormOptions, error)
}

type PatientBackendClient interface {
	FindAll(ctx context.Context, search string) (*models.Page[models.Patient], error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Patient, error)
	Update(ctx context.Context, payload map[string]interface{}) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) error
	UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}
