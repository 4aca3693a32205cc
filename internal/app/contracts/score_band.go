package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
)

type ScoreBandRepository interface {
	FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.ScoreBand, error)
	FindByID(ctx context.Context, scoreBandID string) (*models.ScoreBand, error)
	Insert(ctx context.Context, band *models.ScoreBand) (string, error)
	Update(ctx context.Context, band *models.ScoreBand) error
	SoftDeleteByID(ctx context.Context, scoreBandID string) error
}

type ScoreBandUsecase interface {
	FindScoreBandsByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.ScoreBand, error)
	CreateScoreBand(ctx context.Context, request *requests.CreateScoreBand) (*models.ScoreBand, error)
	UpdateScoreBand(ctx context.Context, request *requests.UpdateScoreBand) (*models.ScoreBand, error)
	DeleteScoreBandByID(ctx context.Context, scoreBandID string) error
}
