package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentflow-service/internal/app/config"
	"dentflow-service/internal/app/delivery/http/controllers"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/core/dashboard"
	"dentflow-service/internal/app/services/core/roles"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/metrics"
	"dentflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const routerSecret = "router-secret"

type sessionTable map[string]*models.Session

func (s sessionTable) Read(ctx context.Context, sessionID string) (*models.Session, error) {
	return s[sessionID], nil
}

type fixedAccess struct{}

func (fixedAccess) Evaluate(ctx context.Context, session *models.Session) *responses.AccessDecision {
	if session == nil {
		return &responses.AccessDecision{State: constvars.AccessStateUnauthenticated, Redirect: constvars.RedirectLogin}
	}
	return &responses.AccessDecision{State: constvars.AccessStateNoClinic, Redirect: constvars.RedirectSetupClinic, Role: session.User.Role}
}

func newTestRouter(t *testing.T) (*chi.Mux, *metrics.Metrics) {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.InternalConfig{}
	cfg.App.EndpointPrefix = "api"
	cfg.App.Version = "v1"
	cfg.App.FrontendDomains = []string{"http://localhost:3000"}
	cfg.App.MaxRequests = 1000
	cfg.App.MaxTimeRequestsPerSeconds = 60
	cfg.App.RequestBodyLimitInMegabyte = 1
	cfg.JWT.Secret = routerSecret

	roleUsecase, err := roles.NewRoleUsecase(logger)
	require.NoError(t, err)

	sessions := sessionTable{
		"owner":  {AccessToken: "t", User: models.User{Role: constvars.RoleOwner}},
		"doctor": {AccessToken: "t", User: models.User{Role: constvars.RoleDoctor}},
		"admin":  {AccessToken: "t", User: models.User{Role: constvars.RoleSuperadmin}},
	}

	appMetrics := metrics.NewMetrics()
	mw := middlewares.NewMiddlewares(logger, cfg, sessions, fixedAccess{}, roleUsecase, appMetrics)

	ctrls := &Controllers{
		Auth:         controllers.NewAuthController(logger, nil),
		Access:       controllers.NewAccessController(logger, fixedAccess{}, dashboard.NewDashboardUsecase()),
		Clinic:       controllers.NewClinicController(logger, nil),
		Appointment:  controllers.NewAppointmentController(logger, nil),
		Patient:      controllers.NewPatientController(logger, nil),
		Staff:        controllers.NewStaffController(logger, nil),
		Service:      controllers.NewServiceController(logger, nil),
		Subscription: controllers.NewSubscriptionController(logger, nil),
	}

	router := chi.NewRouter()
	SetupRoutes(router, cfg, appMetrics, mw, ctrls)
	return router, appMetrics
}

func serve(t *testing.T, router http.Handler, method, path, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if sessionID != "" {
		token, err := utils.GenerateSessionJWT(sessionID, routerSecret, time.Hour)
		require.NoError(t, err)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name             string
		method           string
		path             string
		sessionID        string
		expectedStatus   int
		expectedLocation string
	}{
		{name: "anonymous access check", method: http.MethodGet, path: "/api/v1/access", expectedStatus: http.StatusOK},
		{name: "dashboard needs a session", method: http.MethodGet, path: "/api/v1/dashboard", expectedStatus: http.StatusUnauthorized},
		{name: "owner dashboard", method: http.MethodGet, path: "/api/v1/dashboard", sessionID: "owner", expectedStatus: http.StatusOK},
		{name: "patients need a session", method: http.MethodGet, path: "/api/v1/patients", expectedStatus: http.StatusUnauthorized},
		{name: "doctor cannot list clinics", method: http.MethodGet, path: "/api/v1/clinics", sessionID: "doctor", expectedStatus: http.StatusForbidden},
		{name: "superadmin cannot open patients", method: http.MethodGet, path: "/api/v1/patients", sessionID: "admin", expectedStatus: http.StatusForbidden},
		{
			name:             "doctor without clinic is gated",
			method:           http.MethodGet,
			path:             "/api/v1/appointments",
			sessionID:        "doctor",
			expectedStatus:   http.StatusForbidden,
			expectedLocation: constvars.RedirectSetupClinic,
		},
		{name: "clinic toggle needs confirm", method: http.MethodDelete, path: "/api/v1/clinics/3", sessionID: "admin", expectedStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.method, tt.path, tt.sessionID)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get(constvars.HeaderLocation))
			}
			assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
		})
	}
}

func TestSetupRoutes_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	serve(t, router, http.MethodGet, "/api/v1/dashboard", "owner")

	rec := serve(t, router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dentflow_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/api/v1/dashboard"`)
}
