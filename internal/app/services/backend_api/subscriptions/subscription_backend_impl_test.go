package subscriptions

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubscriptionBackendClient(t *testing.T) {
	t.Run("current subscription is returned raw", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscriptions/", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`[{"is_active":false,"approved":false}]`))
		}))
		defer server.Close()

		client := NewSubscriptionBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		raw, err := client.FindCurrent(backend.WithBearerToken(context.Background(), "tok"))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"is_active":false,"approved":false}]`, string(raw))
	})

	t.Run("empty current subscription becomes an empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewSubscriptionBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		raw, err := client.FindCurrent(context.Background())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(raw))
	})

	t.Run("non json current subscription is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		client := NewSubscriptionBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		_, err := client.FindCurrent(context.Background())
		assert.Error(t, err)
	})

	t.Run("plans read the plans key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/subscriptions/plans/", r.URL.Path)
			w.Write([]byte(`{"plans":[{"id":1,"name":"Basic","price_monthly":"19.99"}]}`))
		}))
		defer server.Close()

		client := NewSubscriptionBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		plans, err := client.FindAllPlans(context.Background())
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, "19.99", plans[0].PriceMonthly.String())
	})

	t.Run("activation puts the request id in the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/subscriptions/requests/", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"subscription_request_id":"4","start_date":"2024-06-01","renew_type":"monthly"}`, string(body))
		}))
		defer server.Close()

		client := NewSubscriptionBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		require.NoError(t, client.ActivateRequest(context.Background(), &requests.ActivateSubscriptionRequest{
			SubscriptionRequestID: "4",
			StartDate:             "2024-06-01",
			RenewType:             "monthly",
		}))
	})
}
