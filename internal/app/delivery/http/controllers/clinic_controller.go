package controllers

import (
	"net/http"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicController struct {
	Log           *zap.Logger
	ClinicUsecase contracts.ClinicUsecase
}

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase) *ClinicController {
	return &ClinicController{
		Log:           logger,
		ClinicUsecase: clinicUsecase,
	}
}

// CreateClinic runs the setup-clinic step for an owner.
func (ctrl *ClinicController) CreateClinic(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClinic)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.CreateClinic(
		ctx,
		middlewares.SessionIDFromContext(r.Context()),
		middlewares.SessionFromContext(r.Context()),
		request,
	)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClinicSuccessfully, result)
}

func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.ClinicFilter{
		Name: r.URL.Query().Get(constvars.URLQueryParamName),
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.FindAll(ctx, middlewares.SessionFromContext(r.Context()), filter)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicsSuccessfully, result)
}

// ToggleClinicStatus flips a clinic between active and inactive.
func (ctrl *ClinicController) ToggleClinicStatus(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	err := ctrl.ClinicUsecase.ToggleClinicStatus(ctx, middlewares.SessionFromContext(r.Context()), clinicID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleClinicStatusSuccessfully, nil)
}
