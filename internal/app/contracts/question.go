package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
)

type QuestionRepository interface {
	FindByID(ctx context.Context, questionID string) (*models.Question, error)
	// FindActiveByIDs returns Active, non-deleted questions matching the ids,
	// ordered by ascending id. Missing ids are silently absent.
	FindActiveByIDs(ctx context.Context, questionIDs []string) ([]models.Question, error)
	// FindActiveChildren returns Active, non-deleted questions whose
	// parentQuestionId equals parentQuestionID, ordered by ascending id.
	FindActiveChildren(ctx context.Context, questionnaireID, parentQuestionID string) ([]models.Question, error)
	FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.Question, error)
	Insert(ctx context.Context, question *models.Question) (string, error)
	Update(ctx context.Context, question *models.Question) error
	SoftDeleteByID(ctx context.Context, questionID string) error
}

type OptionRepository interface {
	FindByID(ctx context.Context, optionID string) (*models.Option, error)
	FindByQuestionIDs(ctx context.Context, questionIDs []string) ([]models.Option, error)
	Insert(ctx context.Context, option *models.Option) (string, error)
	Update(ctx context.Context, option *models.Option) error
	SoftDeleteByID(ctx context.Context, optionID string) error
}

type QuestionUsecase interface {
	CreateQuestion(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error)
	UpdateQuestion(ctx context.Context, request *requests.UpdateQuestion) (*models.Question, error)
	FindQuestionByID(ctx context.Context, questionID string) (*models.Question, error)
	FindQuestionsByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.Question, error)
	DeleteQuestionByID(ctx context.Context, questionID string) error
	CreateOption(ctx context.Context, questionID string, request *requests.CreateOption) (*models.Option, error)
	UpdateOption(ctx context.Context, request *requests.UpdateOption) (*models.Option, error)
	DeleteOptionByID(ctx context.Context, optionID string) error
	// ResolveVisibleSubQuestions implements the conditional resolver: the
	// selected option's override list is authoritative; without one, all
	// active structural children are revealed. Never errors on no match.
	ResolveVisibleSubQuestions(ctx context.Context, request *requests.ResolveSubQuestions) ([]responses.SubQuestion, error)
}
