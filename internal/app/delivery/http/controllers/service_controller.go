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

type ServiceController struct {
	Log            *zap.Logger
	ServiceUsecase contracts.ServiceUsecase
}

func NewServiceController(logger *zap.Logger, serviceUsecase contracts.ServiceUsecase) *ServiceController {
	return &ServiceController{
		Log:            logger,
		ServiceUsecase: serviceUsecase,
	}
}

func (ctrl *ServiceController) FindAll(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)
	filter := &requests.ServiceFilter{
		Search:   r.URL.Query().Get(constvars.URLQueryParamSearch),
		Category: r.URL.Query().Get(constvars.URLQueryParamCategory),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.ServiceUsecase.FindAll(ctx, middlewares.SessionFromContext(r.Context()), filter)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	total := result.Total
	if total == 0 {
		total = len(result.Items)
	}
	paginationData := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetServicesSuccessfully, paginationData, result.Items)
}

func (ctrl *ServiceController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	result, err := ctrl.ServiceUsecase.FindByID(ctx, middlewares.SessionFromContext(r.Context()), serviceID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceSuccessfully, result)
}

func (ctrl *ServiceController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateService)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.ServiceUsecase.Create(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateServiceSuccessfully, result)
}

func (ctrl *ServiceController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateService)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ServiceID = chi.URLParam(r, constvars.URLParamServiceID)

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.ServiceUsecase.Update(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateServiceSuccessfully, result)
}

func (ctrl *ServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	serviceID := chi.URLParam(r, constvars.URLParamServiceID)
	if err := ctrl.ServiceUsecase.Delete(ctx, middlewares.SessionFromContext(r.Context()), serviceID); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteServiceSuccessfully, nil)
}
