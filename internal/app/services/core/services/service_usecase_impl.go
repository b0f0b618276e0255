package services

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type serviceUsecase struct {
	ServiceBackendClient contracts.ServiceBackendClient
	Log                  *zap.Logger
}

func NewServiceUsecase(serviceBackendClient contracts.ServiceBackendClient, logger *zap.Logger) contracts.ServiceUsecase {
	return &serviceUsecase{
		ServiceBackendClient: serviceBackendClient,
		Log:                  logger,
	}
}

func (uc *serviceUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.ServiceFilter) (*models.Page[models.Service], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.ServiceBackendClient.FindAll(ctx, filter)
}

func (uc *serviceUsecase) FindByID(ctx context.Context, session *models.Session, serviceID string) (*models.Service, error) {
	if err := utils.ValidateUrlParamID(serviceID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamServiceID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.ServiceBackendClient.FindByID(ctx, serviceID)
}

func (uc *serviceUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateService) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Name = strings.TrimSpace(request.Name)
	request.Category = strings.TrimSpace(request.Category)
	request.Price = strings.TrimSpace(request.Price)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	price, err := utils.ParseAmount("price", request.Price)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := map[string]interface{}{
		"name":        request.Name,
		"description": strings.TrimSpace(request.Description),
		"price":       price,
		"category":    request.Category,
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.ServiceBackendClient.Create(ctx, payload)
}

// Update sends the id plus the fields present in the request; absent fields
// are left untouched on the backend.
func (uc *serviceUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdateService) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(request.ServiceID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamServiceID)
	}

	payload := map[string]interface{}{"id": request.ServiceID}
	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, exceptions.ErrInputValidation(errors.New("name must not be empty"))
		}
		payload["name"] = name
	}
	if request.Description != nil {
		payload["description"] = strings.TrimSpace(*request.Description)
	}
	if request.Category != nil {
		payload["category"] = strings.TrimSpace(*request.Category)
	}
	if request.Price != nil {
		price, err := utils.ParseAmount("price", *request.Price)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		payload["price"] = price
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.ServiceBackendClient.Update(ctx, payload)
}

func (uc *serviceUsecase) Delete(ctx context.Context, session *models.Session, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(serviceID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamServiceID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.ServiceBackendClient.Delete(ctx, serviceID)
}
