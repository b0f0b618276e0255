package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthBackendClient(t *testing.T) {
	t.Run("login returns the raw payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/core/login/", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"a@b.co","password":"secret"}`, string(body))
			w.Write([]byte(`{"access":"acc","refresh":"ref","user":{"id":1,"is_superuser":false}}`))
		}))
		defer server.Close()

		client := NewAuthBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		raw, err := client.Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "secret"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"access":"acc","refresh":"ref","user":{"id":1,"is_superuser":false}}`, string(raw))
	})

	t.Run("login failure keeps status and backend message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
		}))
		defer server.Close()

		client := NewAuthBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		raw, err := client.Login(context.Background(), &requests.Login{Email: "a@b.co", Password: "wrong"})
		assert.Nil(t, raw)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "No active account found with the given credentials", customErr.ClientMessage)
	})

	t.Run("register field errors become the client message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/core/register/", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"email":["user with this email already exists."]}`))
		}))
		defer server.Close()

		client := NewAuthBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		err := client.Register(context.Background(), &requests.Register{Email: "a@b.co"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email: user with this email already exists.", customErr.ClientMessage)
	})

	t.Run("verify sends email and auth code as query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/core/verify/", r.URL.Path)
			assert.Equal(t, "a@b.co", r.URL.Query().Get("email"))
			assert.Equal(t, "123456", r.URL.Query().Get("auth_code"))
		}))
		defer server.Close()

		client := NewAuthBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		require.NoError(t, client.VerifyAccount(context.Background(), "a@b.co", "123456"))
	})

	t.Run("forget password posts the email query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/core/forget_password/", r.URL.Path)
			assert.Equal(t, "a@b.co", r.URL.Query().Get("email"))
		}))
		defer server.Close()

		client := NewAuthBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		require.NoError(t, client.ForgetPassword(context.Background(), "a@b.co"))
	})
}
