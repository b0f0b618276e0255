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

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	return &SubscriptionController{
		Log:                 logger,
		SubscriptionUsecase: subscriptionUsecase,
	}
}

// GetOverview backs the owner's choose-plan and billing screens.
func (ctrl *SubscriptionController) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.GetOverview(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubscriptionOverviewSuccessfully, result)
}

func (ctrl *SubscriptionController) RequestPlanChange(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RequestPlanChange)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.RequestPlanChange(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RequestPlanChangeSuccessfully, result)
}

func (ctrl *SubscriptionController) FindAllPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.FindAllPlans(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPlansSuccessfully, result)
}

func (ctrl *SubscriptionController) FindPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	planID := chi.URLParam(r, constvars.URLParamPlanID)
	result, err := ctrl.SubscriptionUsecase.FindPlanByID(ctx, middlewares.SessionFromContext(r.Context()), planID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPlanSuccessfully, result)
}

// SavePlan serves both create (POST) and edit (PUT with a plan id).
func (ctrl *SubscriptionController) SavePlan(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SavePlan)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if planID := chi.URLParam(r, constvars.URLParamPlanID); planID != "" {
		request.SubscriptionPlanID = planID
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.SavePlan(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	code := constvars.StatusOK
	if r.Method == http.MethodPost {
		code = constvars.StatusCreated
	}
	utils.BuildSuccessResponse(w, code, constvars.SavePlanSuccessfully, result)
}

func (ctrl *SubscriptionController) FindAllRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.FindAllRequests(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubscriptionRequestsSuccessfully, result)
}

func (ctrl *SubscriptionController) ActivateRequest(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ActivateSubscriptionRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.SubscriptionRequestID = chi.URLParam(r, constvars.URLParamRequestID)

	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ctrl.SubscriptionUsecase.ActivateRequest(ctx, middlewares.SessionFromContext(r.Context()), request); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ActivateSubscriptionRequestSuccessfully, nil)
}

func (ctrl *SubscriptionController) GetPaymentsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.SubscriptionUsecase.GetPaymentsOverview(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsOverviewSuccessfully, result)
}
