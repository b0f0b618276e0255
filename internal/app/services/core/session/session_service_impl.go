package session

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/constvars"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", constvars.SessionKeyPrefix, sessionID)
}

func (svc *sessionService) Save(ctx context.Context, sessionID string, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := svc.RedisRepository.Set(ctx, sessionKey(sessionID), session, svc.TTL)
	if err != nil {
		svc.Log.Error("sessionService.Save error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Read returns (nil, nil) when no usable session exists. A stored blob that
// cannot be normalized is removed.
func (svc *sessionService) Read(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	data, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.Read error fetching session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := Normalize([]byte(data))
	if session == nil {
		svc.Log.Warn("sessionService.Read discarding unreadable session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		if err := svc.RedisRepository.Delete(ctx, sessionKey(sessionID)); err != nil {
			svc.Log.Error("sessionService.Read error clearing session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, nil
	}

	return session, nil
}

func (svc *sessionService) Clear(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
