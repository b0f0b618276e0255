package middlewares

import (
	"dentflow-service/internal/app/config"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SessionReader  contracts.SessionReader
	AccessUsecase  contracts.AccessUsecase
	RoleUsecase    contracts.RoleUsecase
	Metrics        *metrics.Metrics
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	sessionReader contracts.SessionReader,
	accessUsecase contracts.AccessUsecase,
	roleUsecase contracts.RoleUsecase,
	appMetrics *metrics.Metrics,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		SessionReader:  sessionReader,
		AccessUsecase:  accessUsecase,
		RoleUsecase:    roleUsecase,
		Metrics:        appMetrics,
	}
}
