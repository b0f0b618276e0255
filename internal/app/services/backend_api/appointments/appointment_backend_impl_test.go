package appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppointmentBackendClient(t *testing.T) {
	t.Run("list sends status and date filters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments/", r.URL.Path)
			assert.Equal(t, "pending", r.URL.Query().Get("status"))
			assert.Equal(t, "2024-06-01", r.URL.Query().Get("date"))
			w.Write([]byte(`[{"id":1,"status":"pending","patient":5}]`))
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		page, err := client.FindAll(context.Background(), "pending", "2024-06-01")
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "5", page.Items[0].Patient.String())
	})

	t.Run("empty filters are not sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			w.Write([]byte(`{"appointments":[]}`))
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		page, err := client.FindAll(context.Background(), "", "")
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("delete uses the appointment_id query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/appointments/", r.URL.Path)
			assert.Equal(t, "12", r.URL.Query().Get("appointment_id"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		require.NoError(t, client.Delete(context.Background(), "12"))
	})

	t.Run("not found keeps the backend status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments/12", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		_, err := client.FindByID(context.Background(), "12")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Not found.", customErr.ClientMessage)
	})
}
