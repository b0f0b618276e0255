package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type ClinicUsecase interface {
	CreateClinic(ctx context.Context, sessionID string, session *models.Session, request *requests.CreateClinic) (*responses.NextStep, error)
	FindAll(ctx context.Context, session *models.Session, filter *requests.ClinicFilter) ([]models.Clinic, error)
	ToggleClinicStatus(ctx context.Context, session *models.Session, clinicID string) error
}

type ClinicBackendClient interface {
	// FindOwnClinic returns the raw clinic payload so the access gate can
	// sniff an embedded subscription.
	FindOwnClinic(ctx context.Context) (json.RawMessage, error)
	CreateClinic(ctx context.Context, request *requests.CreateClinic) (json.RawMessage, error)
	FindAll(ctx context.Context, name string) ([]models.Clinic, error)
	ToggleClinicStatus(ctx context.Context, clinicID string) error
}
