package screenings

import (
	"context"
	"fmt"
	"time"

	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const eligibilityCacheKeyFormat = "screening:eligibility:%s"

type screeningUsecase struct {
	PatientScreeningRepository contracts.PatientScreeningRepository
	RedisRepository            contracts.RedisRepository
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewScreeningUsecase(
	patientScreeningRepository contracts.PatientScreeningRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScreeningUsecase {
	return &screeningUsecase{
		PatientScreeningRepository: patientScreeningRepository,
		RedisRepository:            redisRepository,
		InternalConfig:             internalConfig,
		Log:                        logger,
	}
}

// FindScreeningState reads the cached flag first and falls back to the
// database. A patient with no flag document at all has simply never been
// screened; that is a valid state, not an error.
func (uc *screeningUsecase) FindScreeningState(ctx context.Context, patientID string) (*responses.ScreeningState, error) {
	cacheKey := fmt.Sprintf(eligibilityCacheKeyFormat, patientID)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var screening models.PatientScreening
		if err := json.Unmarshal([]byte(cached), &screening); err == nil {
			return toScreeningState(patientID, &screening), nil
		}
	}

	screening, err := uc.PatientScreeningRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.EligibilityCacheTTLInHours) * time.Hour
	if screening != nil && ttl > 0 {
		if err := uc.RedisRepository.Set(ctx, cacheKey, screening, ttl); err != nil {
			uc.Log.Warn("failed to cache screening state",
				zap.String("patient_id", patientID),
				zap.Error(err),
			)
		}
	}

	return toScreeningState(patientID, screening), nil
}

// ReenableScreening clears the screened flag so the patient can retake the
// primary questionnaire, keeping the historical latest score for reference.
func (uc *screeningUsecase) ReenableScreening(ctx context.Context, patientID string) error {
	screening, err := uc.PatientScreeningRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return err
	}
	if screening == nil {
		screening = &models.PatientScreening{PatientID: patientID}
	}

	screening.Screened = false
	screening.UpdatedAt = time.Now().UTC()

	if err := uc.PatientScreeningRepository.Upsert(ctx, screening); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(eligibilityCacheKeyFormat, patientID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("failed to invalidate screening cache",
			zap.String("patient_id", patientID),
			zap.Error(err),
		)
	}
	return nil
}

func toScreeningState(patientID string, screening *models.PatientScreening) *responses.ScreeningState {
	state := &responses.ScreeningState{PatientID: patientID}
	if screening == nil {
		return state
	}

	state.Screened = screening.Screened
	state.LatestTotalScore = screening.LatestTotalScore
	state.FollowUpEligible = screening.FollowUpEligible
	if screening.LatestResponseID != nil {
		state.LatestResponseID = screening.LatestResponseID.Hex()
	}
	return state
}
