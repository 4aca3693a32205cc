package questionnaires

import (
	"context"
	"fmt"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
}

func NewQuestionnaireUsecase(
	questionnaireRepository contracts.QuestionnaireRepository,
) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *questionnaireUsecase) FindAll(ctx context.Context, status string) ([]models.Questionnaire, error) {
	return uc.QuestionnaireRepository.FindAll(ctx, status)
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	status := request.Status
	if status == "" {
		status = constvars.StatusActive
	}

	now := time.Now().UTC()
	questionnaire := &models.Questionnaire{
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questionnaireID, err := uc.QuestionnaireRepository.Insert(ctx, questionnaire)
	if err != nil {
		return nil, err
	}

	return uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaire, err := uc.FindQuestionnaireByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	questionnaire.Title = request.Title
	questionnaire.Description = request.Description
	if request.Status != "" {
		questionnaire.Status = request.Status
	}
	questionnaire.UpdatedAt = time.Now().UTC()

	if err := uc.QuestionnaireRepository.Update(ctx, questionnaire); err != nil {
		return nil, err
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	if _, err := uc.FindQuestionnaireByID(ctx, questionnaireID); err != nil {
		return err
	}
	return uc.QuestionnaireRepository.SoftDeleteByID(ctx, questionnaireID)
}
