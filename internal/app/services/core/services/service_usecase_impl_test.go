package services

import (
	"context"
	"net/http"
	"testing"

	"dentflow-service/internal/app/contracts/mocks"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var ownerSession = &models.Session{AccessToken: "tok", User: models.User{ID: "1", Role: constvars.RoleOwner}}

func strPtr(s string) *string { return &s }

func TestServiceUsecase_Create(t *testing.T) {
	t.Run("price is sent as a number", func(t *testing.T) {
		client := new(mocks.ServiceBackendClient)
		uc := NewServiceUsecase(client, zap.NewNop())
		client.On("Create", mock.Anything, map[string]interface{}{
			"name":        "Cleaning",
			"description": "",
			"price":       49.5,
			"category":    "Hygiene",
		}).Return(&models.Service{ID: "1"}, nil)

		_, err := uc.Create(context.Background(), ownerSession, &requests.CreateService{
			Name: "Cleaning", Price: "49.5", Category: "Hygiene",
		})
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		client := new(mocks.ServiceBackendClient)
		uc := NewServiceUsecase(client, zap.NewNop())

		_, err := uc.Create(context.Background(), ownerSession, &requests.CreateService{
			Name: "Cleaning", Price: "-3", Category: "Hygiene",
		})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		client.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestServiceUsecase_Update(t *testing.T) {
	tests := []struct {
		name     string
		request  *requests.UpdateService
		expected map[string]interface{}
	}{
		{
			name:     "only price changed",
			request:  &requests.UpdateService{ServiceID: "3", Price: strPtr("80")},
			expected: map[string]interface{}{"id": "3", "price": float64(80)},
		},
		{
			name:     "name and category changed",
			request:  &requests.UpdateService{ServiceID: "3", Name: strPtr(" Whitening "), Category: strPtr("Cosmetic")},
			expected: map[string]interface{}{"id": "3", "name": "Whitening", "category": "Cosmetic"},
		},
		{
			name:     "description cleared",
			request:  &requests.UpdateService{ServiceID: "3", Description: strPtr("")},
			expected: map[string]interface{}{"id": "3", "description": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.ServiceBackendClient)
			uc := NewServiceUsecase(client, zap.NewNop())
			client.On("Update", mock.Anything, tt.expected).Return(&models.Service{ID: "3"}, nil)

			_, err := uc.Update(context.Background(), ownerSession, tt.request)
			require.NoError(t, err)
			client.AssertExpectations(t)
		})
	}

	t.Run("blank name is rejected", func(t *testing.T) {
		uc := NewServiceUsecase(new(mocks.ServiceBackendClient), zap.NewNop())
		_, err := uc.Update(context.Background(), ownerSession, &requests.UpdateService{ServiceID: "3", Name: strPtr(" ")})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	})
}

func TestServiceUsecase_FindAllAndDelete(t *testing.T) {
	client := new(mocks.ServiceBackendClient)
	uc := NewServiceUsecase(client, zap.NewNop())
	client.On("FindAll", mock.Anything, &requests.ServiceFilter{Search: "clean", Page: 2, PageSize: 10}).
		Return(&models.Page[models.Service]{Page: 2}, nil)
	client.On("Delete", mock.Anything, "9").Return(nil)

	page, err := uc.FindAll(context.Background(), ownerSession, &requests.ServiceFilter{Search: " clean ", Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	require.NoError(t, uc.Delete(context.Background(), ownerSession, "9"))
}
