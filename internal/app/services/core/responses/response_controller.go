package responses

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ResponseController struct {
	Log             *zap.Logger
	ResponseUsecase contracts.ResponseUsecase
}

func NewResponseController(logger *zap.Logger, responseUsecase contracts.ResponseUsecase) *ResponseController {
	return &ResponseController{
		Log:             logger,
		ResponseUsecase: responseUsecase,
	}
}

func (ctrl *ResponseController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitResponse)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.QuestionnaireID = chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResponseUsecase.SubmitResponse(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitResponseSuccessMessage, response)
}

func (ctrl *ResponseController) FindResponseByID(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)
	if err := utils.ValidateUrlParamID(responseID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamResponseID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResponseUsecase.FindResponseByID(ctx, responseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindResponseSuccessMessage, response)
}

func (ctrl *ResponseController) ListResponses(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListResponses{
		QuestionnaireID: chi.URLParam(r, constvars.URLParamQuestionnaireID),
		PatientID:       r.URL.Query().Get(constvars.URLQueryParamPatientID),
		Page:            parsePositiveInt(r.URL.Query().Get(constvars.URLQueryParamPage), 1),
		PageSize:        parsePositiveInt(r.URL.Query().Get(constvars.URLQueryParamPageSize), 20),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, total, err := ctrl.ResponseUsecase.ListResponses(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListResponseSuccessMessage, pagination, results)
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
