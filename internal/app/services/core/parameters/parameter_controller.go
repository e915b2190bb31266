package parameters

import (
	"context"
	"net/http"
	"time"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ParameterController struct {
	Log              *zap.Logger
	ParameterUsecase contracts.ParameterUsecase
}

func NewParameterController(logger *zap.Logger, parameterUsecase contracts.ParameterUsecase) *ParameterController {
	return &ParameterController{
		Log:              logger,
		ParameterUsecase: parameterUsecase,
	}
}

func (ctrl *ParameterController) FindAllParameters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ParameterUsecase.FindAllParameters(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetParametersSuccessMessage, response)
}
