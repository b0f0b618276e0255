package controllers

import (
	"errors"
	"net/http"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		// Unverified accounts are sent to the verification screen.
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.ClientMessage == constvars.ErrClientAccountNotActive {
			w.Header().Set(constvars.HeaderLocation, constvars.RedirectVerify)
		}
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, middlewares.SessionIDFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Register)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.AuthUsecase.Register(ctx, request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, result)
}

// VerifyAccount accepts the code either as query parameters, which is what
// the e-mailed link carries, or as a JSON body.
func (ctrl *AuthController) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	request := &requests.VerifyAccount{
		Email:    r.URL.Query().Get(constvars.URLQueryParamEmail),
		AuthCode: r.URL.Query().Get(constvars.URLQueryParamAuthCode),
	}
	if r.Method == http.MethodPost {
		if err := utils.DecodeJSONBody(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ctrl.AuthUsecase.VerifyAccount(ctx, request); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifySuccess, nil)
}

func (ctrl *AuthController) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgetPassword)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ctrl.AuthUsecase.ForgetPassword(ctx, request); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ForgotPasswordSuccess, nil)
}
