package clinics

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/app/services/shared/events"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type clinicUsecase struct {
	ClinicBackendClient contracts.ClinicBackendClient
	SessionService      contracts.SessionService
	EventPublisher      contracts.EventPublisher
	Log                 *zap.Logger
}

func NewClinicUsecase(
	clinicBackendClient contracts.ClinicBackendClient,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicBackendClient: clinicBackendClient,
		SessionService:      sessionService,
		EventPublisher:      eventPublisher,
		Log:                 logger,
	}
}

// CreateClinic registers the owner's clinic and stores it on the session, so
// the next access evaluation moves on to plan selection.
func (uc *clinicUsecase) CreateClinic(ctx context.Context, sessionID string, session *models.Session, request *requests.CreateClinic) (*responses.NextStep, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.CreateClinic called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.User.ID),
	)

	request.Name = strings.TrimSpace(request.Name)
	request.Address = strings.TrimSpace(request.Address)
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	created, err := uc.ClinicBackendClient.CreateClinic(ctx, request)
	if err != nil {
		return nil, err
	}

	session.User.Clinic = created
	if err := uc.SessionService.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, &contracts.ActivityEvent{
		Event:     constvars.EventClinicCreated,
		ActorRole: session.User.Role,
		ActorID:   session.User.ID,
		Payload:   request,
	})

	return &responses.NextStep{Redirect: constvars.RedirectChoosePlan}, nil
}

func (uc *clinicUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.ClinicFilter) ([]models.Clinic, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	clinics, err := uc.ClinicBackendClient.FindAll(ctx, strings.TrimSpace(filter.Name))
	if err != nil {
		return nil, err
	}
	if clinics == nil {
		clinics = []models.Clinic{}
	}
	return clinics, nil
}

func (uc *clinicUsecase) ToggleClinicStatus(ctx context.Context, session *models.Session, clinicID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("clinicUsecase.ToggleClinicStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	if err := utils.ValidateUrlParamID(clinicID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamClinicID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	if err := uc.ClinicBackendClient.ToggleClinicStatus(ctx, clinicID); err != nil {
		return err
	}

	events.Emit(ctx, uc.EventPublisher, uc.Log, &contracts.ActivityEvent{
		Event:      constvars.EventClinicStatusToggled,
		ActorRole:  session.User.Role,
		ActorID:    session.User.ID,
		ResourceID: clinicID,
	})
	return nil
}
