package clinics

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Save(ctx context.Context, sessionID string, session *models.Session) error {
	return m.Called(ctx, sessionID, session).Error(0)
}

func (m *MockSessionService) Read(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) Clear(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *contracts.ActivityEvent) error {
	return m.Called(ctx, event).Error(0)
}

func withToken(token string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return backend.BearerToken(ctx) == token
	})
}

func TestClinicUsecase_CreateClinic(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the clinic on the session and moves to plan selection", func(t *testing.T) {
		clinicClient := new(MockClinicBackendClient)
		sessionService := new(MockSessionService)
		publisher := new(MockEventPublisher)
		uc := NewClinicUsecase(clinicClient, sessionService, publisher, zap.NewNop())

		session := &models.Session{AccessToken: "tok", User: models.User{ID: "5", Role: constvars.RoleOwner}}
		clinicClient.On("CreateClinic", withToken("tok"), mock.MatchedBy(func(r *requests.CreateClinic) bool {
			return r.PhoneNumber == "08123456789" && r.Name == "Smile"
		})).Return(json.RawMessage(`{"id":12,"name":"Smile"}`), nil)
		sessionService.On("Save", mock.Anything, "sid", mock.MatchedBy(func(s *models.Session) bool {
			return s.ClinicID() == "12"
		})).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *contracts.ActivityEvent) bool {
			return e.Event == constvars.EventClinicCreated
		})).Return(nil)

		next, err := uc.CreateClinic(ctx, "sid", session, &requests.CreateClinic{
			Name:        " Smile ",
			Address:     "Main st 1",
			PhoneNumber: "0812 345 6789",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RedirectChoosePlan, next.Redirect)
		assert.True(t, session.HasClinic())
		clinicClient.AssertExpectations(t)
		sessionService.AssertExpectations(t)
	})

	t.Run("short phone never reaches backend", func(t *testing.T) {
		clinicClient := new(MockClinicBackendClient)
		uc := NewClinicUsecase(clinicClient, new(MockSessionService), new(MockEventPublisher), zap.NewNop())

		_, err := uc.CreateClinic(ctx, "sid", &models.Session{AccessToken: "tok"}, &requests.CreateClinic{
			Name:        "Smile",
			Address:     "Main st 1",
			PhoneNumber: "12345",
		})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		clinicClient.AssertNotCalled(t, "CreateClinic", mock.Anything, mock.Anything)
	})
}

func TestClinicUsecase_ToggleClinicStatus(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{AccessToken: "admin", User: models.User{ID: "1", Role: constvars.RoleSuperadmin}}

	t.Run("toggles and publishes even when the broker fails", func(t *testing.T) {
		clinicClient := new(MockClinicBackendClient)
		publisher := new(MockEventPublisher)
		uc := NewClinicUsecase(clinicClient, new(MockSessionService), publisher, zap.NewNop())

		clinicClient.On("ToggleClinicStatus", withToken("admin"), "42").Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *contracts.ActivityEvent) bool {
			return e.Event == constvars.EventClinicStatusToggled && e.ResourceID == "42"
		})).Return(errors.New("broker down"))

		require.NoError(t, uc.ToggleClinicStatus(ctx, session, "42"))
		publisher.AssertExpectations(t)
	})

	t.Run("backend failure is returned and nothing is published", func(t *testing.T) {
		clinicClient := new(MockClinicBackendClient)
		publisher := new(MockEventPublisher)
		uc := NewClinicUsecase(clinicClient, new(MockSessionService), publisher, zap.NewNop())

		clinicClient.On("ToggleClinicStatus", mock.Anything, "42").
			Return(exceptions.ErrBackendResponse(errors.New("404"), http.StatusNotFound, constvars.ResourceClinic, "Not found"))

		err := uc.ToggleClinicStatus(ctx, session, "42")
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCode(err))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("rejects ids with path characters", func(t *testing.T) {
		uc := NewClinicUsecase(new(MockClinicBackendClient), new(MockSessionService), new(MockEventPublisher), zap.NewNop())
		err := uc.ToggleClinicStatus(ctx, session, "1/../2")
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})
}

func TestClinicUsecase_FindAll(t *testing.T) {
	clinicClient := new(MockClinicBackendClient)
	uc := NewClinicUsecase(clinicClient, new(MockSessionService), new(MockEventPublisher), zap.NewNop())
	clinicClient.On("FindAll", withToken("admin"), "smile").Return(nil, nil)

	clinics, err := uc.FindAll(context.Background(), &models.Session{AccessToken: "admin"}, &requests.ClinicFilter{Name: " smile "})
	require.NoError(t, err)
	assert.NotNil(t, clinics)
	assert.Empty(t, clinics)
}
