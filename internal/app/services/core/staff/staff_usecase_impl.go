package staff

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type staffUsecase struct {
	StaffBackendClient contracts.StaffBackendClient
	Log                *zap.Logger
}

func NewStaffUsecase(staffBackendClient contracts.StaffBackendClient, logger *zap.Logger) contracts.StaffUsecase {
	return &staffUsecase{
		StaffBackendClient: staffBackendClient,
		Log:                logger,
	}
}

func (uc *staffUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.StaffFilter) (*models.Page[models.StaffMember], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamStaffType, filter.StaffType),
	)

	if err := utils.ValidateStruct(filter); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.StaffBackendClient.FindAll(ctx, filter.StaffType)
}

// Create adds a doctor or an assistant. Percentage and specialty only make
// sense for doctors and are dropped otherwise.
func (uc *staffUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateStaff) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if request.Role != constvars.StaffTypeDoctor {
		request.Percentage = ""
		request.Specialty = ""
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.StaffBackendClient.Create(ctx, request)
}

// Update edits a staff profile. The role cannot change here, so doctor-only
// fields are sent whenever the form carried them.
func (uc *staffUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdateStaff) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(request.StaffID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamStaffID)
	}
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.StaffBackendClient.Update(ctx, request)
}

func (uc *staffUsecase) Delete(ctx context.Context, session *models.Session, staffID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(staffID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamStaffID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.StaffBackendClient.Delete(ctx, staffID)
}
