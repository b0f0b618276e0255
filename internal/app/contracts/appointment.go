package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter) (*models.Page[models.Appointment], error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, session *models.Session, request *requests.UpdateAppointment) (*models.Appointment, error)
	Delete(ctx context.Context, session *models.Session, appointmentID string) error
	FormOptions(ctx context.Context, session *models.Session) (*responses.AppointmentFormOptions, error)
}

type AppointmentBackendClient interface {
	FindAll(ctx context.Context, status, date string) (*models.Page[models.Appointment], error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error)
	Update(ctx context.Context, payload map[string]interface{}) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID string) error
}
