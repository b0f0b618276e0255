package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
)

type SessionService interface {
	Save(ctx context.Context, sessionID string, session *models.Session) error
	Read(ctx context.Context, sessionID string) (*models.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
