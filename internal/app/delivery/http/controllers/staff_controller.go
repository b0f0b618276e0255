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

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase contracts.StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

// FindAll lists doctors or assistants, picked by the path segment.
func (ctrl *StaffController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.StaffFilter{
		StaffType: chi.URLParam(r, constvars.URLParamStaffType),
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.FindAll(ctx, middlewares.SessionFromContext(r.Context()), filter)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessfully, result)
}

func (ctrl *StaffController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateStaff)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ctrl.StaffUsecase.Create(ctx, middlewares.SessionFromContext(r.Context()), request); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessfully, nil)
}

func (ctrl *StaffController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateStaff)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.StaffID = chi.URLParam(r, constvars.URLParamStaffID)

	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ctrl.StaffUsecase.Update(ctx, middlewares.SessionFromContext(r.Context()), request); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStaffSuccessfully, nil)
}

func (ctrl *StaffController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	staffID := chi.URLParam(r, constvars.URLParamStaffID)
	if err := ctrl.StaffUsecase.Delete(ctx, middlewares.SessionFromContext(r.Context()), staffID); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteStaffSuccessfully, nil)
}
