package patients

import (
	"context"
	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/app/services/shared/backend"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/dto/responses"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type patientUsecase struct {
	PatientBackendClient contracts.PatientBackendClient
	StaffBackendClient   contracts.StaffBackendClient
	Log                  *zap.Logger
}

func NewPatientUsecase(
	patientBackendClient contracts.PatientBackendClient,
	staffBackendClient contracts.StaffBackendClient,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientBackendClient: patientBackendClient,
		StaffBackendClient:   staffBackendClient,
		Log:                  logger,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.PatientFilter) (*models.Page[models.Patient], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.FindAll(ctx, strings.TrimSpace(filter.Search))
}

func (uc *patientUsecase) FindByID(ctx context.Context, session *models.Session, patientID string) (*models.Patient, error) {
	if err := utils.ValidateUrlParamID(patientID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.FindByID(ctx, patientID)
}

func (uc *patientUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request.Name = strings.TrimSpace(request.Name)
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := patientPayload(request.Name, request.Gender, request.PhoneNumber, request.BirthDate, request.DoctorID, request.AssistantID)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.Create(ctx, payload)
}

func (uc *patientUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(request.PatientID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}
	request.Name = strings.TrimSpace(request.Name)
	request.PhoneNumber = utils.NormalizePhoneDigits(request.PhoneNumber)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := patientPayload(request.Name, request.Gender, request.PhoneNumber, request.BirthDate, request.DoctorID, request.AssistantID)
	payload["patient_id"] = request.PatientID

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.Update(ctx, payload)
}

func (uc *patientUsecase) Delete(ctx context.Context, session *models.Session, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(patientID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.Delete(ctx, patientID)
}

func (uc *patientUsecase) UploadAttachment(ctx context.Context, session *models.Session, request *requests.UploadAttachment) (*models.Attachment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("file_name", request.FileName),
		zap.Int("size", len(request.Content)),
	)

	if err := utils.ValidateUrlParamID(request.PatientID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID)
	}
	if len(request.Content) == 0 {
		return nil, exceptions.ErrInputValidation(errors.New("attachment is empty"))
	}
	request.FileName = filepath.Base(request.FileName)
	if request.FileName == "." || request.FileName == string(filepath.Separator) {
		return nil, exceptions.ErrInputValidation(errors.New("attachment has no file name"))
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.UploadAttachment(ctx, request)
}

func (uc *patientUsecase) DeleteAttachment(ctx context.Context, session *models.Session, attachmentID string) error {
	if err := utils.ValidateUrlParamID(attachmentID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamAttachmentID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.PatientBackendClient.DeleteAttachment(ctx, attachmentID)
}

func (uc *patientUsecase) FormOptions(ctx context.Context, session *models.Session) (*responses.PatientFormOptions, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FormOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors, assistants *models.Page[models.StaffMember]

	g, gctx := errgroup.WithContext(backend.WithBearerToken(ctx, session.AccessToken))
	g.Go(func() (err error) {
		doctors, err = uc.StaffBackendClient.FindAll(gctx, constvars.StaffTypeDoctor)
		return err
	})
	g.Go(func() (err error) {
		assistants, err = uc.StaffBackendClient.FindAll(gctx, constvars.StaffTypeAssistant)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	options := &responses.PatientFormOptions{
		Doctors:    make([]responses.Option, 0, len(doctors.Items)),
		Assistants: make([]responses.Option, 0, len(assistants.Items)),
	}
	for _, doctor := range doctors.Items {
		options.Doctors = append(options.Doctors, responses.Option{ID: doctor.ID.String(), Label: doctor.DoctorLabel()})
	}
	for _, assistant := range assistants.Items {
		options.Assistants = append(options.Assistants, responses.Option{ID: assistant.ID.String(), Label: assistant.AssistantLabel()})
	}
	return options, nil
}

// patientPayload drops an unset assistant so the backend stores none.
func patientPayload(name, gender, phone, birthDate, doctorID, assistantID string) map[string]interface{} {
	payload := map[string]interface{}{
		"name":         name,
		"gender":       gender,
		"phone_number": phone,
		"birth_date":   birthDate,
		"doctor_id":    doctorID,
	}
	if assistantID != "" {
		payload["assistant_id"] = assistantID
	}
	return payload
}
