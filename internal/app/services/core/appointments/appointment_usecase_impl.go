package appointments

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
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type appointmentUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	PatientBackendClient     contracts.PatientBackendClient
	StaffBackendClient       contracts.StaffBackendClient
	Log                      *zap.Logger
}

func NewAppointmentUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	patientBackendClient contracts.PatientBackendClient,
	staffBackendClient contracts.StaffBackendClient,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		PatientBackendClient:     patientBackendClient,
		StaffBackendClient:       staffBackendClient,
		Log:                      logger,
	}
}

// FindAll lists appointments, defaulting to today's scheduled ones.
func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter) (*models.Page[models.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if filter.Status == "" {
		filter.Status = constvars.AppointmentStatusScheduled
	}
	if filter.Date == "" {
		filter.Date = utils.Today()
	}
	if err := utils.ValidateStruct(filter); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLQueryParamStatus, filter.Status),
		zap.String(constvars.URLQueryParamDate, filter.Date),
	)

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.AppointmentBackendClient.FindAll(ctx, filter.Status, filter.Date)
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.AppointmentBackendClient.FindByID(ctx, appointmentID)
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Status == "" {
		request.Status = constvars.AppointmentStatusScheduled
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := map[string]interface{}{
		"patient_id":   request.PatientID,
		"doctor_id":    request.DoctorID,
		"assistant_id": request.AssistantID,
		"time":         appointmentTime(request.Date, request.Time),
		"status":       request.Status,
		"description":  strings.TrimSpace(request.Description),
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.AppointmentBackendClient.Create(ctx, payload)
}

// Update never moves an appointment to another patient; doctor and
// assistant are only sent when chosen.
func (uc *appointmentUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(request.AppointmentID); err != nil {
		return nil, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	payload := map[string]interface{}{
		"appointment_id": request.AppointmentID,
		"time":           appointmentTime(request.Date, request.Time),
		"status":         request.Status,
		"description":    strings.TrimSpace(request.Description),
	}
	if request.DoctorID != "" {
		payload["doctor_id"] = request.DoctorID
	}
	if request.AssistantID != "" {
		payload["assistant_id"] = request.AssistantID
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.AppointmentBackendClient.Update(ctx, payload)
}

func (uc *appointmentUsecase) Delete(ctx context.Context, session *models.Session, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		return exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID)
	}

	ctx = backend.WithBearerToken(ctx, session.AccessToken)
	return uc.AppointmentBackendClient.Delete(ctx, appointmentID)
}

// FormOptions loads patients, doctors and assistants in parallel. Any single
// failure fails the whole form.
func (uc *appointmentUsecase) FormOptions(ctx context.Context, session *models.Session) (*responses.AppointmentFormOptions, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FormOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		patients   *models.Page[models.Patient]
		doctors    *models.Page[models.StaffMember]
		assistants *models.Page[models.StaffMember]
	)

	g, gctx := errgroup.WithContext(backend.WithBearerToken(ctx, session.AccessToken))
	g.Go(func() (err error) {
		patients, err = uc.PatientBackendClient.FindAll(gctx, "")
		return err
	})
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

	options := &responses.AppointmentFormOptions{
		Patients:   make([]responses.Option, 0, len(patients.Items)),
		Doctors:    make([]responses.Option, 0, len(doctors.Items)),
		Assistants: make([]responses.Option, 0, len(assistants.Items)),
	}
	for _, patient := range patients.Items {
		options.Patients = append(options.Patients, responses.Option{ID: patient.ID.String(), Label: patient.Name})
	}
	for _, doctor := range doctors.Items {
		options.Doctors = append(options.Doctors, responses.Option{ID: doctor.ID.String(), Label: doctor.DoctorLabel()})
	}
	for _, assistant := range assistants.Items {
		options.Assistants = append(options.Assistants, responses.Option{ID: assistant.ID.String(), Label: assistant.AssistantLabel()})
	}
	return options, nil
}

func appointmentTime(date, clock string) string {
	return fmt.Sprintf("%s %s:00", date, clock)
}
