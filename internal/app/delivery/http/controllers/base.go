package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// requestTimeout bounds every backend round trip made for one dashboard request.
const requestTimeout = 10 * time.Second

func withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func respondError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func requireDeleteConfirmation(log *zap.Logger, w http.ResponseWriter, r *http.Request) bool {
	if utils.IsDeleteConfirmed(r) {
		return true
	}
	utils.BuildErrorResponse(log, w, exceptions.ErrDeleteNotConfirmed(errors.New("missing confirm=true")))
	return false
}
