package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/responses"
)

type AccessUsecase interface {
	Evaluate(ctx context.Context, session *models.Session) *responses.AccessDecision
}

type DashboardUsecase interface {
	Resolve(role string) (*responses.Dashboard, bool)
}

type RoleUsecase interface {
	IsPermitted(role, method, path string) (bool, error)
}
