package contracts

import (
	"context"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Register(ctx context.Context, request *requests.Register) (*responses.NextStep, error)
	VerifyAccount(ctx context.Context, request *requests.VerifyAccount) error
	ForgetPassword(ctx context.Context, request *requests.ForgetPassword) error
}

type AuthBackendClient interface {
	Login(ctx context.Context, request *requests.Login) (json.RawMessage, error)
	Register(ctx context.Context, request *requests.Register) error
	VerifyAccount(ctx context.Context, email, authCode string) error
	ForgetPassword(ctx context.Context, email string) error
}

// SessionReader is the part of the session store the HTTP layer needs.
type SessionReader interface {
	Read(ctx context.Context, sessionID string) (*models.Session, error)
}
