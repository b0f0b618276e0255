package auth

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authBackendClient struct {
	Client *backend.Client
	Log    *zap.Logger
}

func NewAuthBackendClient(client *backend.Client, logger *zap.Logger) contracts.AuthBackendClient {
	return &authBackendClient{
		Client: client,
		Log:    logger,
	}
}

// Login returns the raw login payload. Its shape differs between backend
// versions and is normalized by the session store.
func (c *authBackendClient) Login(ctx context.Context, request *requests.Login) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointLogin,
		Body:     request,
		Resource: constvars.ResourceAuth,
	})
	if err != nil {
		c.Log.Error("authBackendClient.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return json.RawMessage(body), nil
}

func (c *authBackendClient) Register(ctx context.Context, request *requests.Register) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointRegister,
		Body:     request,
		Resource: constvars.ResourceAuth,
	}, nil)
}

func (c *authBackendClient) VerifyAccount(ctx context.Context, email, authCode string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.VerifyAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryEmail, email)
	query.Set(constvars.BackendQueryAuthCode, authCode)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodGet,
		Endpoint: constvars.EndpointVerifyCode,
		Query:    query,
		Resource: constvars.ResourceAuth,
	}, nil)
}

func (c *authBackendClient) ForgetPassword(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authBackendClient.ForgetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	query.Set(constvars.BackendQueryEmail, email)

	return c.Client.DoJSON(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Endpoint: constvars.EndpointForgetPassword,
		Query:    query,
		Resource: constvars.ResourceAuth,
	}, nil)
}
