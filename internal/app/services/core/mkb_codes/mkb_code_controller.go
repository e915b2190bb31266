package mkb_codes

import (
	"context"
	"net/http"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type MKBCodeController struct {
	Log            *zap.Logger
	MKBCodeUsecase contracts.MKBCodeUsecase
}

func NewMKBCodeController(logger *zap.Logger, mkbCodeUsecase contracts.MKBCodeUsecase) *MKBCodeController {
	return &MKBCodeController{
		Log:            logger,
		MKBCodeUsecase: mkbCodeUsecase,
	}
}

// SearchMKBCodes matches the term case-insensitively against both the code
// and the diagnosis name; an empty term lists the whole catalog.
func (ctrl *MKBCodeController) SearchMKBCodes(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get(constvars.URLQueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MKBCodeUsecase.SearchMKBCodes(ctx, term)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SearchMKBCodesSuccessMessage, response)
}
