package controllers

import (
	"io"
	"net/http"

	"dentflow-service/internal/app/contracts"
	"dentflow-service/internal/app/delivery/http/middlewares"
	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"
	"dentflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxAttachmentMemory is how much of a multipart upload is kept in memory
// before spilling to disk.
const maxAttachmentMemory = 8 << 20

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := &requests.PatientFilter{
		Search: r.URL.Query().Get(constvars.URLQueryParamSearch),
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FindAll(ctx, middlewares.SessionFromContext(r.Context()), filter)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientsSuccessfully, result)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	result, err := ctrl.PatientUsecase.FindByID(ctx, middlewares.SessionFromContext(r.Context()), patientID)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessfully, result)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePatient)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Create(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessfully, result)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePatient)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.Update(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessfully, result)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if err := ctrl.PatientUsecase.Delete(ctx, middlewares.SessionFromContext(r.Context()), patientID); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePatientSuccessfully, nil)
}

// UploadAttachment takes one file from the "attachment" multipart field and
// streams it through to the backend.
func (ctrl *PatientController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAttachmentMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.MultipartFieldAttachment)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadAttachment{
		PatientID:   chi.URLParam(r, constvars.URLParamPatientID),
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Content:     content,
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.UploadAttachment(ctx, middlewares.SessionFromContext(r.Context()), request)
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessfully, result)
}

func (ctrl *PatientController) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	if !requireDeleteConfirmation(ctrl.Log, w, r) {
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()

	attachmentID := chi.URLParam(r, constvars.URLParamAttachmentID)
	if err := ctrl.PatientUsecase.DeleteAttachment(ctx, middlewares.SessionFromContext(r.Context()), attachmentID); err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAttachmentSuccessfully, nil)
}

func (ctrl *PatientController) FormOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	result, err := ctrl.PatientUsecase.FormOptions(ctx, middlewares.SessionFromContext(r.Context()))
	if err != nil {
		respondError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFormOptionsSuccessfully, result)
}
