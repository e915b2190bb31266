package observations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ObservationController struct {
	Log                *zap.Logger
	ObservationUsecase contracts.ObservationUsecase
}

func NewObservationController(logger *zap.Logger, observationUsecase contracts.ObservationUsecase) *ObservationController {
	return &ObservationController{
		Log:                logger,
		ObservationUsecase: observationUsecase,
	}
}

func (ctrl *ObservationController) CreateObservation(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateObservation)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.SessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.CreateObservation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateObservationSuccessMessage, response)
}

// FindObservations lists observations for one patient; an unscoped listing
// is rejected to keep the result set bounded.
func (ctrl *ObservationController) FindObservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawPatientID := query.Get(constvars.URLQueryParamPatientID)
	if rawPatientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingPatientIDFilter(nil))
		return
	}
	patientID, err := utils.ParseIDParam(rawPatientID, constvars.URLQueryParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListObservations{
		PatientID:     patientID,
		ParameterCode: utils.OptionalString(query.Get(constvars.URLQueryParamParameterCode)),
	}

	if raw := query.Get(constvars.URLQueryParamEpisodeID); raw != "" {
		episodeID, err := utils.ParseIDParam(raw, constvars.URLQueryParamEpisodeID)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.EpisodeID = &episodeID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.FindObservations(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationsSuccessMessage, response)
}

func (ctrl *ObservationController) FindObservationByID(w http.ResponseWriter, r *http.Request) {
	observationID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamObservationID), constvars.URLParamObservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.FindObservationByID(ctx, observationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationSuccessMessage, response)
}

func (ctrl *ObservationController) UpdateObservation(w http.ResponseWriter, r *http.Request) {
	observationID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamObservationID), constvars.URLParamObservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateObservation)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.ObservationID = observationID
	request.SessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.UpdateObservation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateObservationSuccessMessage, response)
}

func (ctrl *ObservationController) DeleteObservation(w http.ResponseWriter, r *http.Request) {
	observationID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamObservationID), constvars.URLParamObservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ObservationUsecase.DeleteObservation(ctx, observationID, sessionData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteObservationSuccessMessage, nil)
}
