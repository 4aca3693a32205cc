package scorebands

import (
	"context"
	"net/http"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScoreBandController struct {
	Log              *zap.Logger
	ScoreBandUsecase contracts.ScoreBandUsecase
}

func NewScoreBandController(logger *zap.Logger, scoreBandUsecase contracts.ScoreBandUsecase) *ScoreBandController {
	return &ScoreBandController{
		Log:              logger,
		ScoreBandUsecase: scoreBandUsecase,
	}
}

func (ctrl *ScoreBandController) ListScoreBandsByQuestionnaireID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	if err := utils.ValidateUrlParamID(questionnaireID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamQuestionnaireID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScoreBandUsecase.FindScoreBandsByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListScoreBandSuccessMessage, response)
}

func (ctrl *ScoreBandController) CreateScoreBand(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateScoreBand)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.QuestionnaireID = chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScoreBandUsecase.CreateScoreBand(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateScoreBandSuccessMessage, response)
}

func (ctrl *ScoreBandController) UpdateScoreBand(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateScoreBand)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ID = chi.URLParam(r, constvars.URLParamScoreBandID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScoreBandUsecase.UpdateScoreBand(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateScoreBandSuccessMessage, response)
}

func (ctrl *ScoreBandController) DeleteScoreBandByID(w http.ResponseWriter, r *http.Request) {
	scoreBandID := chi.URLParam(r, constvars.URLParamScoreBandID)
	if err := utils.ValidateUrlParamID(scoreBandID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamScoreBandID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.ScoreBandUsecase.DeleteScoreBandByID(ctx, scoreBandID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteScoreBandSuccessMessage, nil)
}
