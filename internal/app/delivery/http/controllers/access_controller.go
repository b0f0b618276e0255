package controllers

import (
	"net/http"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AccessController struct {
	Log              *zap.Logger
	AccessUsecase    contracts.AccessUsecase
	DashboardUsecase contracts.DashboardUsecase
}

func NewAccessController(logger *zap.Logger, accessUsecase contracts.AccessUsecase, dashboardUsecase contracts.DashboardUsecase) *AccessController {
	return &AccessController{
		Log:              logger,
		AccessUsecase:    accessUsecase,
		DashboardUsecase: dashboardUsecase,
	}
}

// Resolve reports where the dashboard should send the current visitor. It
// always answers 200, anonymous visitors included.
func (ctrl *AccessController) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	decision := ctrl.AccessUsecase.Evaluate(ctx, middlewares.SessionFromContext(r.Context()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AccessResolvedSuccessfully, decision)
}

// Dashboard returns the menu and view for the session role. Unknown roles
// render nothing.
func (ctrl *AccessController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	role := ""
	if session != nil {
		role = session.User.Role
	}

	dashboard, ok := ctrl.DashboardUsecase.Resolve(role)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessfully, dashboard)
}
