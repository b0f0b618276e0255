package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
)

type StaffUsecase interface {
	FindAll(ctx context.Context, session *models.Session, filter *requests.StaffFilter) (*models.Page[models.StaffMember], error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateStaff) error
	Update(ctx context.Context, session *models.Session, request *requests.UpdateStaff) error
	Delete(ctx context.Context, session *models.Session, staffID string) error
}

type StaffBackendClient interface {
	FindAll(ctx context.Context, staffType string) (*models.Page[models.StaffMember], error)
	Create(ctx context.Context, request *requests.CreateStaff) error
	Update(ctx context.Context, request *requests.UpdateStaff) error
	Delete(ctx context.Context, staffID string) error
}
