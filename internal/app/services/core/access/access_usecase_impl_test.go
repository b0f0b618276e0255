package access

import (
	"context"
	"errors"
	"testing"

	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockClinicBackendClient struct {
	mock.Mock
}

func (m *MockClinicBackendClient) FindOwnClinic(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockClinicBackendClient) CreateClinic(ctx context.Context, request *requests.CreateClinic) (json.RawMessage, error) {
	args := m.Called(ctx, request)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockClinicBackendClient) FindAll(ctx context.Context, name string) ([]models.Clinic, error) {
	args := m.Called(ctx, name)
	clinics, _ := args.Get(0).([]models.Clinic)
	return clinics, args.Error(1)
}

func (m *MockClinicBackendClient) ToggleClinicStatus(ctx context.Context, clinicID string) error {
	return m.Called(ctx, clinicID).Error(0)
}

type MockSubscriptionBackendClient struct {
	mock.Mock
}

func (m *MockSubscriptionBackendClient) FindCurrent(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockSubscriptionBackendClient) RequestPlanChange(ctx context.Context, payload map[string]interface{}) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *MockSubscriptionBackendClient) FindAllPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.SubscriptionPlan)
	return plans, args.Error(1)
}

func (m *MockSubscriptionBackendClient) FindPlanByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, planID)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockSubscriptionBackendClient) CreatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockSubscriptionBackendClient) UpdatePlan(ctx context.Context, payload map[string]interface{}) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockSubscriptionBackendClient) FindAllRequests(ctx context.Context) ([]models.SubscriptionRequest, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.SubscriptionRequest)
	return list, args.Error(1)
}

func (m *MockSubscriptionBackendClient) ActivateRequest(ctx context.Context, request *requests.ActivateSubscriptionRequest) error {
	return m.Called(ctx, request).Error(0)
}

func ownerSession() *models.Session {
	return &models.Session{AccessToken: "tok", User: models.User{Role: constvars.RoleOwner}}
}

func bearer(token string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return backend.BearerToken(ctx) == token
	})
}

func TestAccessUsecase_Evaluate(t *testing.T) {
	ctx := context.Background()

	newUsecase := func() (*accessUsecase, *MockClinicBackendClient, *MockSubscriptionBackendClient, *metrics.Metrics) {
		clinics := new(MockClinicBackendClient)
		subscriptions := new(MockSubscriptionBackendClient)
		m := metrics.NewMetrics()
		uc := NewAccessUsecase(clinics, subscriptions, m.AccessDecisions, zap.NewNop()).(*accessUsecase)
		return uc, clinics, subscriptions, m
	}

	t.Run("no session goes to login without backend calls", func(t *testing.T) {
		uc, clinics, subscriptions, m := newUsecase()

		decision := uc.Evaluate(ctx, nil)

		assert.Equal(t, constvars.AccessStateUnauthenticated, decision.State)
		assert.Equal(t, constvars.RedirectLogin, decision.Redirect)
		clinics.AssertNotCalled(t, "FindOwnClinic", mock.Anything)
		subscriptions.AssertNotCalled(t, "FindCurrent", mock.Anything)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues(constvars.AccessStateUnauthenticated)))
	})

	t.Run("superadmin is active without backend calls", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()

		decision := uc.Evaluate(ctx, &models.Session{AccessToken: "tok", User: models.User{Role: constvars.RoleSuperadmin}})

		assert.Equal(t, constvars.AccessStateActive, decision.State)
		assert.Empty(t, decision.Redirect)
		clinics.AssertNotCalled(t, "FindOwnClinic", mock.Anything)
		subscriptions.AssertNotCalled(t, "FindCurrent", mock.Anything)
	})

	t.Run("inactive embedded subscription waits", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", bearer("tok")).Return(json.RawMessage(`{"subscription":{"is_active":false}}`), nil)

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStatePendingSubscription, decision.State)
		assert.Equal(t, constvars.RedirectWaitingState, decision.Redirect)
		subscriptions.AssertNotCalled(t, "FindCurrent", mock.Anything)
	})

	t.Run("empty embedded subscription still waits", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{"id":4,"subscription":{}}`), nil)
		subscriptions.On("FindCurrent", mock.Anything).Return(json.RawMessage(`[]`), nil)

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStatePendingSubscription, decision.State)
		assert.Equal(t, constvars.RedirectWaitingState, decision.Redirect)
		subscriptions.AssertNotCalled(t, "FindCurrent", mock.Anything)
	})

	t.Run("null embedded subscription falls back to the list", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{"id":4,"subscription":null}`), nil)
		subscriptions.On("FindCurrent", mock.Anything).Return(json.RawMessage(`[{"is_active":true}]`), nil)

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateActive, decision.State)
		subscriptions.AssertExpectations(t)
	})

	t.Run("active embedded subscription passes", func(t *testing.T) {
		uc, clinics, _, m := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{"id":1,"subscription":{"status":"trial"}}`), nil)

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateActive, decision.State)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.AccessDecisions.WithLabelValues(constvars.AccessStateActive)))
	})

	t.Run("empty clinic and empty list chooses a plan", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{}`), nil)
		subscriptions.On("FindCurrent", bearer("tok")).Return(json.RawMessage(`[]`), nil)

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateNoSubscription, decision.State)
		assert.Equal(t, constvars.RedirectChoosePlan, decision.Redirect)
	})

	t.Run("subscription list with plan first", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{"id":3}`), nil)
		subscriptions.On("FindCurrent", mock.Anything).Return(json.RawMessage(
			`[{"price_monthly":"9","max_doctors":2,"is_active":true},{"approved":false}]`), nil)

		decision := uc.Evaluate(ctx, &models.Session{AccessToken: "tok", User: models.User{Role: constvars.RoleDoctor}})

		assert.Equal(t, constvars.AccessStatePendingSubscription, decision.State)
		assert.Equal(t, constvars.RoleDoctor, decision.Role)
	})

	t.Run("clinic network error fails closed", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"), constvars.ResourceClinic))

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateUnauthenticated, decision.State)
		assert.Equal(t, constvars.RedirectLogin, decision.Redirect)
		subscriptions.AssertNotCalled(t, "FindCurrent", mock.Anything)
	})

	t.Run("subscription failure fails closed", func(t *testing.T) {
		uc, clinics, subscriptions, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(json.RawMessage(`{}`), nil)
		subscriptions.On("FindCurrent", mock.Anything).Return(nil, exceptions.ErrBackendResponse(errors.New("boom"), 500, constvars.ResourceSubscription, ""))

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateUnauthenticated, decision.State)
	})

	t.Run("owner without clinic sets one up", func(t *testing.T) {
		uc, clinics, _, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(nil, exceptions.ErrBackendResponse(errors.New("not found"), 404, constvars.ResourceClinic, ""))

		decision := uc.Evaluate(ctx, ownerSession())

		assert.Equal(t, constvars.AccessStateNoClinic, decision.State)
		assert.Equal(t, constvars.RedirectSetupClinic, decision.Redirect)
	})

	t.Run("clinic 404 for staff is a failure", func(t *testing.T) {
		uc, clinics, _, _ := newUsecase()
		clinics.On("FindOwnClinic", mock.Anything).Return(nil, exceptions.ErrBackendResponse(errors.New("not found"), 404, constvars.ResourceClinic, ""))

		decision := uc.Evaluate(ctx, &models.Session{AccessToken: "tok", User: models.User{Role: constvars.RoleAssistant}})

		assert.Equal(t, constvars.AccessStateUnauthenticated, decision.State)
	})
}
