package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
)

type ServiceUsecase interface {
	FindAll(ctx context.Context, session *models.Session, filter *requests.ServiceFilter) (*models.Page[models.Service], error)
	FindByID(ctx context.Context, session *models.Session, serviceID string) (*models.Service, error)
	Create(ctx context.Context, session *models.Session, request *requests.CreateService) (*models.Service, error)
	Update(ctx context.Context, session *models.Session, request *requests.UpdateService) (*models.Service, error)
	Delete(ctx context.Context, session *models.Session, serviceID string) error
}

type ServiceBackendClient interface {
	FindAll(ctx context.Context, filter *requests.ServiceFilter) (*models.Page[models.Service], error)
	FindByID(ctx context.Context, serviceID string) (*models.Service, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Service, error)
	Update(ctx context.Context, payload map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, serviceID string) error
}
