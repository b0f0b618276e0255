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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.AppointmentFilter{
		Status: r.URL.Query().Get(constvars.URLQueryParamStatus),
		Date:   r.URL.Query().Get(constvars.URLQueryParamDate),
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, middlewares.SessionFromContext(r.Context()), filter)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessfully, result)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	result, err := ctrl.AppointmentUsecase.FindByID(ctx, middlewares.SessionFromContext(r.Context()), appointmentID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessfully, result)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Create(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessfully, result)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.AppointmentID = chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Update(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessfully, result)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := ctrl.AppointmentUsecase.Delete(ctx, middlewares.SessionFromContext(r.Context()), appointmentID); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessfully, nil)
}

// FormOptions feeds the patient, doctor and assistant pickers.
func (ctrl *AppointmentController) FormOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FormOptions(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormOptionsSuccessfully, result)
}
