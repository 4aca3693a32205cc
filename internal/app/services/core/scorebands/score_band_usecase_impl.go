package scorebands

import (
	"context"
	"fmt"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type scoreBandUsecase struct {
	ScoreBandRepository     contracts.ScoreBandRepository
	QuestionnaireRepository contracts.QuestionnaireRepository
}

func NewScoreBandUsecase(
	scoreBandRepository contracts.ScoreBandRepository,
	questionnaireRepository contracts.QuestionnaireRepository,
) contracts.ScoreBandUsecase {
	return &scoreBandUsecase{
		ScoreBandRepository:     scoreBandRepository,
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *scoreBandUsecase) FindScoreBandsByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.ScoreBand, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}
	return uc.ScoreBandRepository.FindByQuestionnaireID(ctx, questionnaireID)
}

func (uc *scoreBandUsecase) CreateScoreBand(ctx context.Context, request *requests.CreateScoreBand) (*models.ScoreBand, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", request.QuestionnaireID))
	}

	questionnaireObjectID, err := primitive.ObjectIDFromHex(request.QuestionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now().UTC()
	band := &models.ScoreBand{
		QuestionnaireID: questionnaireObjectID,
		MinScore:        request.MinScore,
		MaxScore:        request.MaxScore,
		Interpretation:  request.Interpretation,
		Recommendation:  request.Recommendation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	bandID, err := uc.ScoreBandRepository.Insert(ctx, band)
	if err != nil {
		return nil, err
	}
	return uc.ScoreBandRepository.FindByID(ctx, bandID)
}

func (uc *scoreBandUsecase) UpdateScoreBand(ctx context.Context, request *requests.UpdateScoreBand) (*models.ScoreBand, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	band, err := uc.ScoreBandRepository.FindByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if band == nil {
		return nil, exceptions.ErrScoreBandNotFound(fmt.Errorf("score band %s not found", request.ID))
	}

	band.MinScore = request.MinScore
	band.MaxScore = request.MaxScore
	band.Interpretation = request.Interpretation
	band.Recommendation = request.Recommendation
	band.UpdatedAt = time.Now().UTC()

	if err := uc.ScoreBandRepository.Update(ctx, band); err != nil {
		return nil, err
	}
	return band, nil
}

func (uc *scoreBandUsecase) DeleteScoreBandByID(ctx context.Context, scoreBandID string) error {
	band, err := uc.ScoreBandRepository.FindByID(ctx, scoreBandID)
	if err != nil {
		return err
	}
	if band == nil {
		return exceptions.ErrScoreBandNotFound(fmt.Errorf("score band %s not found", scoreBandID))
	}
	return uc.ScoreBandRepository.SoftDeleteByID(ctx, scoreBandID)
}
