package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
)

type QuestionnaireRepository interface {
	FindAll(ctx context.Context, status string) ([]models.Questionnaire, error)
	FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	Insert(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	Update(ctx context.Context, questionnaire *models.Questionnaire) error
	SoftDeleteByID(ctx context.Context, questionnaireID string) error
}

type QuestionnaireUsecase interface {
	FindAll(ctx context.Context, status string) ([]models.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}
