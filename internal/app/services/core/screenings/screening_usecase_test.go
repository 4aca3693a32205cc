package screenings

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"screening-service/internal/app/config"
	"screening-service/internal/app/models"
)

type fakePatientScreeningRepository struct {
	screenings map[string]*models.PatientScreening
}

func (f *fakePatientScreeningRepository) FindByPatientID(ctx context.Context, patientID string) (*models.PatientScreening, error) {
	return f.screenings[patientID], nil
}

func (f *fakePatientScreeningRepository) Upsert(ctx context.Context, screening *models.PatientScreening) error {
	f.screenings[screening.PatientID] = screening
	return nil
}

type fakeRedisRepository struct {
	values map[string]string
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = "cached"
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	for key := range f.values {
		if matched, _ := path.Match(pattern, key); matched {
			delete(f.values, key)
		}
	}
	return nil
}

func newScreeningFixture() (*fakePatientScreeningRepository, *fakeRedisRepository, *screeningUsecase) {
	repo := &fakePatientScreeningRepository{screenings: make(map[string]*models.PatientScreening)}
	cache := &fakeRedisRepository{values: make(map[string]string)}
	uc := NewScreeningUsecase(repo, cache, &config.InternalConfig{}, zap.NewNop()).(*screeningUsecase)
	return repo, cache, uc
}

func TestFindScreeningState(t *testing.T) {
	ctx := context.Background()

	t.Run("never screened patient has a zero state", func(t *testing.T) {
		_, _, uc := newScreeningFixture()

		state, err := uc.FindScreeningState(ctx, "patient-1")
		assert.NoError(t, err)
		assert.Equal(t, "patient-1", state.PatientID)
		assert.False(t, state.Screened)
		assert.False(t, state.FollowUpEligible)
		assert.Nil(t, state.LatestTotalScore)
	})

	t.Run("screened patient state comes from the flag document", func(t *testing.T) {
		repo, _, uc := newScreeningFixture()
		responseID := primitive.NewObjectID()
		score := 5
		repo.screenings["patient-2"] = &models.PatientScreening{
			PatientID:        "patient-2",
			Screened:         true,
			LatestResponseID: &responseID,
			LatestTotalScore: &score,
			FollowUpEligible: true,
		}

		state, err := uc.FindScreeningState(ctx, "patient-2")
		assert.NoError(t, err)
		assert.True(t, state.Screened)
		assert.True(t, state.FollowUpEligible)
		assert.Equal(t, 5, *state.LatestTotalScore)
		assert.Equal(t, responseID.Hex(), state.LatestResponseID)
	})
}

func TestReenableScreening(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the screened flag and keeps the latest score", func(t *testing.T) {
		repo, cache, uc := newScreeningFixture()
		score := 8
		repo.screenings["patient-3"] = &models.PatientScreening{
			PatientID:        "patient-3",
			Screened:         true,
			LatestTotalScore: &score,
		}
		cache.values["screening:eligibility:patient-3"] = "stale"

		err := uc.ReenableScreening(ctx, "patient-3")
		assert.NoError(t, err)

		flag := repo.screenings["patient-3"]
		assert.False(t, flag.Screened)
		assert.Equal(t, 8, *flag.LatestTotalScore)
		assert.NotContains(t, cache.values, "screening:eligibility:patient-3")
	})

	t.Run("creates the flag document for an unknown patient", func(t *testing.T) {
		repo, _, uc := newScreeningFixture()

		err := uc.ReenableScreening(ctx, "patient-4")
		assert.NoError(t, err)
		flag := repo.screenings["patient-4"]
		assert.NotNil(t, flag)
		assert.False(t, flag.Screened)
	})
}
