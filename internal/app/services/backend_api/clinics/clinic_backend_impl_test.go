package clinics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentflow-service/internal/app/services/shared/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClinicBackendClient(t *testing.T) {
	t.Run("toggle is a delete on the clinic id", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClinicBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		require.NoError(t, client.ToggleClinicStatus(context.Background(), "42"))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/core/clinic/42", gotPath)
	})

	t.Run("find all passes the name filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/core/clinics/", r.URL.Path)
			assert.Equal(t, "smile", r.URL.Query().Get("name"))
			w.Write([]byte(`[{"id":1,"name":"Smile","disabled":true,"owner":{"id":2,"first_name":"A","last_name":"B"}}]`))
		}))
		defer server.Close()

		client := NewClinicBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		clinics, err := client.FindAll(context.Background(), "smile")
		require.NoError(t, err)
		require.Len(t, clinics, 1)
		assert.Equal(t, "1", clinics[0].ID.String())
		assert.True(t, clinics[0].Disabled)
		assert.Equal(t, "A", clinics[0].Owner.FirstName)
	})

	t.Run("own clinic is returned raw", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":1,"subscription":{"is_active":true}}`))
		}))
		defer server.Close()

		client := NewClinicBackendClient(backend.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())
		raw, err := client.FindOwnClinic(backend.WithBearerToken(context.Background(), "tok"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1,"subscription":{"is_active":true}}`, string(raw))
	})
}
