package research

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ResearchController struct {
	Log             *zap.Logger
	ResearchUsecase contracts.ResearchUsecase
}

func NewResearchController(logger *zap.Logger, researchUsecase contracts.ResearchUsecase) *ResearchController {
	return &ResearchController{
		Log:             logger,
		ResearchUsecase: researchUsecase,
	}
}

// Query runs a research selection over the registry. The response is nested
// JSON by default and a flat CSV export when ?format=csv is set or the
// client accepts text/csv.
func (ctrl *ResearchController) Query(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.parseQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	report, err := ctrl.ResearchUsecase.Query(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if wantsCSV(r) {
		ctrl.writeCSV(w, report)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResearchQuerySuccessMessage, report)
}

func (ctrl *ResearchController) parseQuery(r *http.Request) (*requests.ResearchQuery, error) {
	query := r.URL.Query()

	request := &requests.ResearchQuery{
		DiagnosisMKB: utils.OptionalString(query.Get(constvars.URLQueryParamDiagnosisMKB)),
		ParamCodes:   query[constvars.URLQueryParamParamCodes],
	}
	if len(request.ParamCodes) == 0 {
		return nil, exceptions.ErrMissingParamCodes(nil)
	}

	if raw := query.Get(constvars.URLQueryParamAgeMin); raw != "" {
		ageMin, err := utils.ParseIntQueryParam(raw)
		if err != nil {
			return nil, err
		}
		request.AgeMin = &ageMin
	}
	if raw := query.Get(constvars.URLQueryParamAgeMax); raw != "" {
		ageMax, err := utils.ParseIntQueryParam(raw)
		if err != nil {
			return nil, err
		}
		request.AgeMax = &ageMax
	}

	if raw := query.Get(constvars.URLQueryParamStartDate); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		request.StartDate = &startDate
	}
	if raw := query.Get(constvars.URLQueryParamEndDate); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		request.EndDate = &endDate
	}

	return request, nil
}

func (ctrl *ResearchController) writeCSV(w http.ResponseWriter, report *responses.ResearchReport) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSVCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, `attachment; filename="research_export.csv"`)
	w.WriteHeader(constvars.StatusOK)

	writer := csv.NewWriter(w)
	if err := writer.Write(responses.ResearchCSVHeader); err != nil {
		ctrl.Log.Error("research csv export failed", zap.Error(err))
		return
	}
	for _, row := range report.Rows() {
		if err := writer.Write(row); err != nil {
			ctrl.Log.Error("research csv export failed", zap.Error(err))
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		ctrl.Log.Error("research csv export failed", zap.Error(err))
	}
}

func wantsCSV(r *http.Request) bool {
	if r.URL.Query().Get(constvars.URLQueryParamFormat) == constvars.FormatCSV {
		return true
	}
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMETextCSV)
}
