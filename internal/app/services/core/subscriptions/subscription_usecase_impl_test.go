package subscriptions

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/contracts/mocks"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var adminSession = &models.Session{AccessToken: "admin", User: models.User{ID: "1", Role: constvars.RoleSuperadmin}}

func newUsecase() (*mocks.SubscriptionBackendClient, *mocks.EventPublisher, contracts.SubscriptionUsecase) {
	client := new(mocks.SubscriptionBackendClient)
	publisher := new(mocks.EventPublisher)
	return client, publisher, NewSubscriptionUsecase(client, publisher, zap.NewNop())
}

func planIDs(plans []models.SubscriptionPlan) []string {
	ids := make([]string, 0, len(plans))
	for _, plan := range plans {
		ids = append(ids, plan.ID.String())
	}
	return ids
}

func TestSubscriptionUsecase_GetOverview(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		clinic          string
		expectedIDs     []string
		expectedCurrent string
	}{
		{
			name:        "bare plan array sorted by monthly price",
			payload:     `[{"id":1,"price_monthly":"49.00"},{"id":2,"price_monthly":"9.5"},{"id":3,"price_monthly":0}]`,
			expectedIDs: []string{"3", "2", "1"},
		},
		{
			name:            "plans with current subscription",
			payload:         `{"plans":[{"id":"b","price_monthly":20},{"id":"a","price_monthly":10}],"current_subscription":{"status":"active"}}`,
			expectedIDs:     []string{"a", "b"},
			expectedCurrent: `{"status":"active"}`,
		},
		{
			name:            "clinic subscription in session wins",
			payload:         `{"plans":[],"current_subscription":{"status":"trial"}}`,
			clinic:          `{"id":4,"subscription":{"is_active":true}}`,
			expectedIDs:     []string{},
			expectedCurrent: `{"is_active":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, uc := newUsecase()
			client.On("FindCurrent", mock.Anything).Return(json.RawMessage(tt.payload), nil)

			session := &models.Session{AccessToken: "tok", User: models.User{Role: constvars.RoleOwner}}
			if tt.clinic != "" {
				session.User.Clinic = json.RawMessage(tt.clinic)
			}

			overview, err := uc.GetOverview(context.Background(), session)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, planIDs(overview.Plans))
			if tt.expectedCurrent == "" {
				assert.Nil(t, overview.CurrentSubscription)
			} else {
				assert.JSONEq(t, tt.expectedCurrent, string(overview.CurrentSubscription))
			}
		})
	}
}

func TestSubscriptionUsecase_RequestPlanChange(t *testing.T) {
	owner := &models.Session{
		AccessToken: "tok",
		User:        models.User{ID: "5", Role: constvars.RoleOwner, Clinic: json.RawMessage(`{"id":12}`)},
	}

	t.Run("clinic comes from the session and amount is numeric", func(t *testing.T) {
		client, publisher, uc := newUsecase()
		client.On("RequestPlanChange", mock.Anything, map[string]interface{}{
			"clinic_id":            "12",
			"subscription_plan_id": "3",
			"amount":               29.99,
		}).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		next, err := uc.RequestPlanChange(context.Background(), owner, &requests.RequestPlanChange{
			SubscriptionPlanID: "3",
			Amount:             "29.99",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.RedirectWaitingState, next.Redirect)
		client.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("no clinic anywhere", func(t *testing.T) {
		client, _, uc := newUsecase()
		_, err := uc.RequestPlanChange(context.Background(), &models.Session{AccessToken: "tok"}, &requests.RequestPlanChange{
			SubscriptionPlanID: "3",
			Amount:             "10",
		})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		client.AssertNotCalled(t, "RequestPlanChange", mock.Anything, mock.Anything)
	})
}

func TestSubscriptionUsecase_SavePlan(t *testing.T) {
	request := func(id string) *requests.SavePlan {
		return &requests.SavePlan{
			SubscriptionPlanID: id,
			Name:               "Pro",
			PriceMonthly:       "49",
			PriceYearly:        "490",
			MaxDoctors:         5,
			MaxAssistants:      5,
			MaxPatients:        500,
			IsActive:           true,
		}
	}

	t.Run("new plan is posted", func(t *testing.T) {
		client, publisher, uc := newUsecase()
		client.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p map[string]interface{}) bool {
			_, hasID := p["subscription_plan_id"]
			return !hasID && p["price_monthly"] == float64(49) && p["max_doctors"] == 5
		})).Return(&models.SubscriptionPlan{ID: "8"}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		plan, err := uc.SavePlan(context.Background(), adminSession, request(""))
		require.NoError(t, err)
		assert.Equal(t, "8", plan.ID.String())
		client.AssertNotCalled(t, "UpdatePlan", mock.Anything, mock.Anything)
	})

	t.Run("existing plan is put", func(t *testing.T) {
		client, publisher, uc := newUsecase()
		client.On("UpdatePlan", mock.Anything, mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["subscription_plan_id"] == "8"
		})).Return(&models.SubscriptionPlan{ID: "8"}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.SavePlan(context.Background(), adminSession, request("8"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("negative limits are rejected", func(t *testing.T) {
		_, _, uc := newUsecase()
		invalid := request("")
		invalid.MaxPatients = -1
		_, err := uc.SavePlan(context.Background(), adminSession, invalid)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})
}

func TestSubscriptionUsecase_ActivateRequest(t *testing.T) {
	t.Run("activates and publishes", func(t *testing.T) {
		client, publisher, uc := newUsecase()
		request := &requests.ActivateSubscriptionRequest{SubscriptionRequestID: "4", StartDate: "2026-04-01", RenewType: "monthly"}
		client.On("ActivateRequest", mock.Anything, request).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *contracts.ActivityEvent) bool {
			return e.Event == constvars.EventSubscriptionActivated && e.ResourceID == "4"
		})).Return(nil)

		require.NoError(t, uc.ActivateRequest(context.Background(), adminSession, request))
		publisher.AssertExpectations(t)
	})

	t.Run("unknown renew type", func(t *testing.T) {
		client, _, uc := newUsecase()
		err := uc.ActivateRequest(context.Background(), adminSession, &requests.ActivateSubscriptionRequest{
			SubscriptionRequestID: "4", StartDate: "2026-04-01", RenewType: "weekly",
		})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		client.AssertNotCalled(t, "ActivateRequest", mock.Anything, mock.Anything)
	})
}

func TestSubscriptionUsecase_GetPaymentsOverview(t *testing.T) {
	t.Run("both lists load", func(t *testing.T) {
		client, _, uc := newUsecase()
		client.On("FindAllPlans", mock.Anything).Return([]models.SubscriptionPlan{{ID: "1"}}, nil)
		client.On("FindAllRequests", mock.Anything).Return(nil, nil)

		overview, err := uc.GetPaymentsOverview(context.Background(), adminSession)
		require.NoError(t, err)
		assert.Len(t, overview.Plans, 1)
		assert.NotNil(t, overview.Requests)
		assert.Empty(t, overview.Requests)
	})

	t.Run("a failed list fails the screen", func(t *testing.T) {
		client, _, uc := newUsecase()
		client.On("FindAllPlans", mock.Anything).Return([]models.SubscriptionPlan{}, nil)
		client.On("FindAllRequests", mock.Anything).
			Return(nil, exceptions.ErrBackendResponse(errors.New("500"), http.StatusInternalServerError, constvars.ResourceSubscriptionRequest, "boom"))

		_, err := uc.GetPaymentsOverview(context.Background(), adminSession)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCode(err))
	})
}
