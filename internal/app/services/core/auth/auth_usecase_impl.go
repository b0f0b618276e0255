package auth

import (
	"context"
	"dentflow-service/internal/app/config"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/services/core/session"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient contracts.AuthBackendClient
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthBackendClient: authBackendClient,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := uc.AuthBackendClient.Login(ctx, request)
	if err != nil {
		if isAccountNotActive(err) {
			uc.Log.Info("authUsecase.Login account not active",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, exceptions.ErrAccountNotActive(errors.New(constvars.BackendAccountNotActiveMessage))
		}
		return nil, err
	}

	userSession := session.Normalize(raw)
	if userSession == nil {
		uc.Log.Error("authUsecase.Login backend returned an unusable session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errors.New("login payload has no token or role"), constvars.ResourceAuth)
	}

	sessionID := utils.GenerateSessionID()
	if err := uc.SessionService.Save(ctx, sessionID, userSession); err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	redirect := constvars.RedirectDashboard
	if userSession.User.Role == constvars.RoleOwner && !userSession.HasClinic() {
		redirect = constvars.RedirectSetupClinic
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingRoleKey, userSession.User.Role),
		zap.String(constvars.LoggingRedirectKey, redirect),
	)

	return &responses.LoginResult{
		SessionToken: token,
		User:         &userSession.User,
		Redirect:     redirect,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionService.Clear(ctx, sessionID)
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.NextStep, error) {
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if err := uc.AuthBackendClient.Register(ctx, request); err != nil {
		return nil, err
	}
	return &responses.NextStep{Redirect: constvars.RedirectVerify}, nil
}

func (uc *authUsecase) VerifyAccount(ctx context.Context, request *requests.VerifyAccount) error {
	request.AuthCode = strings.TrimSpace(request.AuthCode)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return uc.AuthBackendClient.VerifyAccount(ctx, request.Email, request.AuthCode)
}

func (uc *authUsecase) ForgetPassword(ctx context.Context, request *requests.ForgetPassword) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return uc.AuthBackendClient.ForgetPassword(ctx, request.Email)
}

func isAccountNotActive(err error) bool {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	if customErr.ClientMessage == constvars.BackendAccountNotActiveMessage {
		return true
	}
	return strings.Contains(strings.ToLower(customErr.ClientMessage), "not active")
}
