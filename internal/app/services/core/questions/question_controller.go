package questions

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

type QuestionController struct {
	Log             *zap.Logger
	QuestionUsecase contracts.QuestionUsecase
}

func NewQuestionController(logger *zap.Logger, questionUsecase contracts.QuestionUsecase) *QuestionController {
	return &QuestionController{
		Log:             logger,
		QuestionUsecase: questionUsecase,
	}
}

func (ctrl *QuestionController) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateQuestion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.QuestionnaireID = chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.CreateQuestion(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuestionSuccessMessage, response)
}

func (ctrl *QuestionController) ListQuestionsByQuestionnaireID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	if err := utils.ValidateUrlParamID(questionnaireID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamQuestionnaireID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.FindQuestionsByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListQuestionSuccessMessage, response)
}

func (ctrl *QuestionController) FindQuestionByID(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)
	if err := utils.ValidateUrlParamID(questionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamQuestionID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.FindQuestionByID(ctx, questionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionSuccessMessage, response)
}

func (ctrl *QuestionController) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateQuestion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ID = chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.UpdateQuestion(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateQuestionSuccessMessage, response)
}

func (ctrl *QuestionController) DeleteQuestionByID(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)
	if err := utils.ValidateUrlParamID(questionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamQuestionID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.QuestionUsecase.DeleteQuestionByID(ctx, questionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteQuestionSuccessMessage, nil)
}

func (ctrl *QuestionController) CreateOption(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateOption)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	questionID := chi.URLParam(r, constvars.URLParamQuestionID)
	if err := utils.ValidateUrlParamID(questionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamQuestionID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.CreateOption(ctx, questionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOptionSuccessMessage, response)
}

func (ctrl *QuestionController) UpdateOption(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateOption)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ID = chi.URLParam(r, constvars.URLParamOptionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.UpdateOption(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOptionSuccessMessage, response)
}

func (ctrl *QuestionController) DeleteOptionByID(w http.ResponseWriter, r *http.Request) {
	optionID := chi.URLParam(r, constvars.URLParamOptionID)
	if err := utils.ValidateUrlParamID(optionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamOptionID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.QuestionUsecase.DeleteOptionByID(ctx, optionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteOptionSuccessMessage, nil)
}

func (ctrl *QuestionController) ResolveSubQuestions(w http.ResponseWriter, r *http.Request) {
	request := &requests.ResolveSubQuestions{
		QuestionnaireID:  chi.URLParam(r, constvars.URLParamQuestionnaireID),
		ParentQuestionID: chi.URLParam(r, constvars.URLParamQuestionID),
		OptionID:         r.URL.Query().Get(constvars.URLQueryParamOptionID),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionUsecase.ResolveVisibleSubQuestions(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveSubQuestionsSuccessMsg, response)
}
