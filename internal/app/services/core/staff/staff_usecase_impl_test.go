package staff

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

func TestStaffUsecase_FindAll(t *testing.T) {
	client := new(mocks.StaffBackendClient)
	uc := NewStaffUsecase(client, zap.NewNop())
	client.On("FindAll", mock.Anything, "doctor").Return(&models.Page[models.StaffMember]{}, nil)

	_, err := uc.FindAll(context.Background(), ownerSession, &requests.StaffFilter{StaffType: "doctor"})
	require.NoError(t, err)

	_, err = uc.FindAll(context.Background(), ownerSession, &requests.StaffFilter{StaffType: "janitor"})
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	client.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestStaffUsecase_Create(t *testing.T) {
	base := func() *requests.CreateStaff {
		return &requests.CreateStaff{
			FirstName:   "Jane",
			LastName:    "Roe",
			Email:       "jane@clinic.co",
			PhoneNumber: "010 1234",
			Password:    "password1",
			Salary:      "1500",
			Percentage:  "30",
			Specialty:   "Surgeon",
		}
	}

	t.Run("assistant loses doctor fields", func(t *testing.T) {
		client := new(mocks.StaffBackendClient)
		uc := NewStaffUsecase(client, zap.NewNop())
		client.On("Create", mock.Anything, mock.MatchedBy(func(r *requests.CreateStaff) bool {
			return r.Percentage == "" && r.Specialty == "" && r.PhoneNumber == "0101234"
		})).Return(nil)

		request := base()
		request.Role = constvars.StaffTypeAssistant
		require.NoError(t, uc.Create(context.Background(), ownerSession, request))
		client.AssertExpectations(t)
	})

	t.Run("doctor keeps doctor fields", func(t *testing.T) {
		client := new(mocks.StaffBackendClient)
		uc := NewStaffUsecase(client, zap.NewNop())
		client.On("Create", mock.Anything, mock.MatchedBy(func(r *requests.CreateStaff) bool {
			return r.Percentage == "30" && r.Specialty == "Surgeon"
		})).Return(nil)

		request := base()
		request.Role = constvars.StaffTypeDoctor
		require.NoError(t, uc.Create(context.Background(), ownerSession, request))
		client.AssertExpectations(t)
	})

	t.Run("missing password", func(t *testing.T) {
		client := new(mocks.StaffBackendClient)
		uc := NewStaffUsecase(client, zap.NewNop())

		request := base()
		request.Role = constvars.StaffTypeDoctor
		request.Password = ""
		err := uc.Create(context.Background(), ownerSession, request)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
		client.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestStaffUsecase_UpdateAndDelete(t *testing.T) {
	client := new(mocks.StaffBackendClient)
	uc := NewStaffUsecase(client, zap.NewNop())
	client.On("Update", mock.Anything, mock.MatchedBy(func(r *requests.UpdateStaff) bool {
		return r.StaffID == "12"
	})).Return(nil)
	client.On("Delete", mock.Anything, "12").Return(nil)

	require.NoError(t, uc.Update(context.Background(), ownerSession, &requests.UpdateStaff{
		StaffID: "12", FirstName: "Jane", LastName: "Roe", Email: "jane@clinic.co", PhoneNumber: "0101234",
	}))
	require.NoError(t, uc.Delete(context.Background(), ownerSession, "12"))

	err := uc.Update(context.Background(), ownerSession, &requests.UpdateStaff{FirstName: "Jane"})
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCode(err))
	client.AssertExpectations(t)
}
