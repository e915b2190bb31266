package episodes

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

type EpisodeController struct {
	Log            *zap.Logger
	EpisodeUsecase contracts.EpisodeUsecase
}

func NewEpisodeController(logger *zap.Logger, episodeUsecase contracts.EpisodeUsecase) *EpisodeController {
	return &EpisodeController{
		Log:            logger,
		EpisodeUsecase: episodeUsecase,
	}
}

func (ctrl *EpisodeController) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateEpisode)
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

	response, err := ctrl.EpisodeUsecase.CreateEpisode(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEpisodeSuccessMessage, response)
}

func (ctrl *EpisodeController) FindEpisodes(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ListEpisodes)
	if raw := r.URL.Query().Get(constvars.URLQueryParamPatientID); raw != "" {
		patientID, err := utils.ParseIDParam(raw, constvars.URLQueryParamPatientID)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		request.PatientID = &patientID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EpisodeUsecase.FindEpisodes(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEpisodesSuccessMessage, response)
}

func (ctrl *EpisodeController) FindEpisodeByID(w http.ResponseWriter, r *http.Request) {
	episodeID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamEpisodeID), constvars.URLParamEpisodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EpisodeUsecase.FindEpisodeByID(ctx, episodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEpisodeSuccessMessage, response)
}

func (ctrl *EpisodeController) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	episodeID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamEpisodeID), constvars.URLParamEpisodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateEpisode)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.EpisodeID = episodeID
	request.SessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EpisodeUsecase.UpdateEpisode(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEpisodeSuccessMessage, response)
}

func (ctrl *EpisodeController) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	episodeID, err := utils.ParseIDParam(chi.URLParam(r, constvars.URLParamEpisodeID), constvars.URLParamEpisodeID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.EpisodeUsecase.DeleteEpisode(ctx, episodeID, sessionData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEpisodeSuccessMessage, nil)
}
