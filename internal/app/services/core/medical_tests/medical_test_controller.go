package medical_tests

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"clinregistry-service/internal/app/config"
	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicalTestController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	MedicalTestUsecase contracts.MedicalTestUsecase
}

func NewMedicalTestController(logger *zap.Logger, internalConfig *config.InternalConfig, medicalTestUsecase contracts.MedicalTestUsecase) *MedicalTestController {
	return &MedicalTestController{
		Log:                logger,
		InternalConfig:     internalConfig,
		MedicalTestUsecase: medicalTestUsecase,
	}
}

func (ctrl *MedicalTestController) CreateMedicalTest(w http.ResponseWriter, r *http.Request) {
	request, file, fileHeader, err := ctrl.parseMultipartRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	createRequest := &requests.CreateMedicalTest{
		PatientID:   request.PatientID,
		TestName:    request.TestName,
		TestDate:    request.TestDate,
		Score:       request.Score,
		ResultText:  request.ResultText,
		FileName:    request.FileName,
		SessionData: request.SessionData,
	}

	if err := utils.ValidateStruct(createRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalTestUsecase.CreateMedicalTest(ctx, createRequest, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalTestSuccessMessage, response)
}

func (ctrl *MedicalTestController) FindMedicalTestByID(w http.ResponseWriter, r *http.Request) {
	medicalTestID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamMedicalTestID), constvars.URLParamMedicalTestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalTestUsecase.FindMedicalTestByID(ctx, medicalTestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalTestSuccessMessage, response)
}

func (ctrl *MedicalTestController) FindMedicalTests(w http.ResponseWriter, r *http.Request) {
	rawPatientID := r.URL.Query().Get(constvars.URLQueryParamPatientID)
	if rawPatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingPatientIDFilter(nil))
		return
	}
	patientID, err := utils.ParseIDParam(rawPatientID, constvars.URLQueryParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalTestUsecase.FindMedicalTestsByPatientID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalTestsSuccessMessage, response)
}

func (ctrl *MedicalTestController) UpdateMedicalTest(w http.ResponseWriter, r *http.Request) {
	medicalTestID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamMedicalTestID), constvars.URLParamMedicalTestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request, file, fileHeader, err := ctrl.parseMultipartRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	updateRequest := &requests.UpdateMedicalTest{
		PatientID:     request.PatientID,
		TestName:      request.TestName,
		TestDate:      request.TestDate,
		Score:         request.Score,
		ResultText:    request.ResultText,
		FileName:      request.FileName,
		MedicalTestID: medicalTestID,
		SessionData:   request.SessionData,
	}

	if err := utils.ValidateStruct(updateRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalTestUsecase.UpdateMedicalTest(ctx, updateRequest, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalTestSuccessMessage, response)
}

func (ctrl *MedicalTestController) DeleteMedicalTest(w http.ResponseWriter, r *http.Request) {
	medicalTestID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamMedicalTestID), constvars.URLParamMedicalTestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.MedicalTestUsecase.DeleteMedicalTest(ctx, medicalTestID, sessionData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicalTestSuccessMessage, nil)
}

// parseMultipartRequest reads the form fields and the optional attachment.
// The in-memory limit follows the configured upload cap; anything above it
// spills to a temp file or is rejected by the header check below.
func (ctrl *MedicalTestController) parseMultipartRequest(r *http.Request) (*requests.CreateMedicalTest, multipart.File, *multipart.FileHeader, error) {
	maxUploadBytes := ctrl.InternalConfig.App.MedicalTestMaxUploadInMB << 20

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.CreateMedicalTest{
		TestName:   r.FormValue(constvars.FormFieldTestName),
		TestDate:   r.FormValue(constvars.FormFieldTestDate),
		ResultText: utils.OptionalString(r.FormValue(constvars.FormFieldResultText)),
	}
	request.SessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	if raw := r.FormValue(constvars.FormFieldPatientID); raw != "" {
		patientID, err := utils.ParseIDParam(raw, constvars.FormFieldPatientID)
		if err != nil {
			return nil, nil, nil, err
		}
		request.PatientID = patientID
	}

	if raw := r.FormValue(constvars.FormFieldScore); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, nil, exceptions.ErrCannotParseFloat(err)
		}
		request.Score = &score
	}

	file, fileHeader, err := r.FormFile(constvars.FormFieldUploadedFile)
	if err == http.ErrMissingFile {
		return request, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	if fileHeader.Size > maxUploadBytes {
		file.Close()
		return nil, nil, nil, exceptions.ErrFileTooLarge(nil)
	}

	request.FileName = fileHeader.Filename
	return request, file, fileHeader, nil
}
