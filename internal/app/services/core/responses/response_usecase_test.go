package responses

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/exceptions"
)

type fakeResponseRepository struct {
	responses []*models.Response
}

func (f *fakeResponseRepository) Insert(ctx context.Context, response *models.Response) (string, error) {
	stored := *response
	stored.ID = primitive.NewObjectID()
	f.responses = append(f.responses, &stored)
	return stored.ID.Hex(), nil
}

func (f *fakeResponseRepository) FindByID(ctx context.Context, responseID string) (*models.Response, error) {
	for _, r := range f.responses {
		if r.ID.Hex() == responseID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeResponseRepository) FindByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string, page, pageSize int) ([]models.Response, int, error) {
	matches := make([]models.Response, 0)
	for _, r := range f.responses {
		if r.QuestionnaireID.Hex() != questionnaireID {
			continue
		}
		if patientID != "" && r.PatientID != patientID {
			continue
		}
		matches = append(matches, *r)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.After(matches[j].CreatedAt) })
	return matches, len(matches), nil
}

func (f *fakeResponseRepository) FindLatestByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string) (*models.Response, error) {
	matches, _, err := f.FindByPatientAndQuestionnaire(ctx, patientID, questionnaireID, 1, 1)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return &matches[0], nil
}

type fakeQuestionnaireRepository struct {
	questionnaires map[string]*models.Questionnaire
}

func (f *fakeQuestionnaireRepository) FindAll(ctx context.Context, status string) ([]models.Questionnaire, error) {
	return nil, nil
}

func (f *fakeQuestionnaireRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	return f.questionnaires[questionnaireID], nil
}

func (f *fakeQuestionnaireRepository) Insert(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	return "", nil
}

func (f *fakeQuestionnaireRepository) Update(ctx context.Context, questionnaire *models.Questionnaire) error {
	return nil
}

func (f *fakeQuestionnaireRepository) SoftDeleteByID(ctx context.Context, questionnaireID string) error {
	return nil
}

type fakeQuestionRepository struct {
	questions []models.Question
}

func (f *fakeQuestionRepository) FindByID(ctx context.Context, questionID string) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID.Hex() == questionID {
			return &f.questions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionRepository) FindActiveByIDs(ctx context.Context, questionIDs []string) ([]models.Question, error) {
	return nil, nil
}

func (f *fakeQuestionRepository) FindActiveChildren(ctx context.Context, questionnaireID, parentQuestionID string) ([]models.Question, error) {
	return nil, nil
}

func (f *fakeQuestionRepository) FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.Question, error) {
	result := make([]models.Question, 0)
	for _, q := range f.questions {
		if q.QuestionnaireID.Hex() == questionnaireID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (f *fakeQuestionRepository) Insert(ctx context.Context, question *models.Question) (string, error) {
	return "", nil
}

func (f *fakeQuestionRepository) Update(ctx context.Context, question *models.Question) error { return nil }

func (f *fakeQuestionRepository) SoftDeleteByID(ctx context.Context, questionID string) error {
	return nil
}

type fakeOptionRepository struct {
	options []models.Option
}

func (f *fakeOptionRepository) FindByID(ctx context.Context, optionID string) (*models.Option, error) {
	return nil, nil
}

func (f *fakeOptionRepository) FindByQuestionIDs(ctx context.Context, questionIDs []string) ([]models.Option, error) {
	wanted := make(map[string]bool, len(questionIDs))
	for _, id := range questionIDs {
		wanted[id] = true
	}
	result := make([]models.Option, 0)
	for _, o := range f.options {
		if wanted[o.QuestionID.Hex()] {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOptionRepository) Insert(ctx context.Context, option *models.Option) (string, error) {
	return "", nil
}

func (f *fakeOptionRepository) Update(ctx context.Context, option *models.Option) error { return nil }

func (f *fakeOptionRepository) SoftDeleteByID(ctx context.Context, optionID string) error { return nil }

type fakeScoreBandRepository struct {
	bands []models.ScoreBand
}

func (f *fakeScoreBandRepository) FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.ScoreBand, error) {
	result := make([]models.ScoreBand, 0)
	for _, b := range f.bands {
		if b.QuestionnaireID.Hex() == questionnaireID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeScoreBandRepository) FindByID(ctx context.Context, scoreBandID string) (*models.ScoreBand, error) {
	return nil, nil
}

func (f *fakeScoreBandRepository) Insert(ctx context.Context, band *models.ScoreBand) (string, error) {
	return "", nil
}

func (f *fakeScoreBandRepository) Update(ctx context.Context, band *models.ScoreBand) error { return nil }

func (f *fakeScoreBandRepository) SoftDeleteByID(ctx context.Context, scoreBandID string) error {
	return nil
}

type fakePatientScreeningRepository struct {
	screenings map[string]*models.PatientScreening
}

func (f *fakePatientScreeningRepository) FindByPatientID(ctx context.Context, patientID string) (*models.PatientScreening, error) {
	return f.screenings[patientID], nil
}

func (f *fakePatientScreeningRepository) Upsert(ctx context.Context, screening *models.PatientScreening) error {
	if f.screenings == nil {
		f.screenings = make(map[string]*models.PatientScreening)
	}
	f.screenings[screening.PatientID] = screening
	return nil
}

type fakeRedisRepository struct{}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f *fakeRedisRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) PutObject(ctx context.Context, objectName string, payload []byte, contentType string) error {
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = payload
	return nil
}

type fakeEventPublisher struct {
	events []*contracts.ScreeningCompletedEvent
}

func (f *fakeEventPublisher) PublishScreeningCompleted(ctx context.Context, event *contracts.ScreeningCompletedEvent) error {
	f.events = append(f.events, event)
	return nil
}

// submissionFixture wires a complete usecase around one active questionnaire.
type submissionFixture struct {
	usecase         contracts.ResponseUsecase
	questionnaireID string
	responseRepo    *fakeResponseRepository
	questionRepo    *fakeQuestionRepository
	optionRepo      *fakeOptionRepository
	scoreBandRepo   *fakeScoreBandRepository
	screeningRepo   *fakePatientScreeningRepository
	storage         *fakeStorage
	publisher       *fakeEventPublisher
	internalConfig  *config.InternalConfig
}

func newSubmissionFixture(primary bool) *submissionFixture {
	questionnaireID := primitive.NewObjectID()

	fixture := &submissionFixture{
		questionnaireID: questionnaireID.Hex(),
		responseRepo:    &fakeResponseRepository{},
		questionRepo:    &fakeQuestionRepository{},
		optionRepo:      &fakeOptionRepository{},
		scoreBandRepo:   &fakeScoreBandRepository{},
		screeningRepo:   &fakePatientScreeningRepository{screenings: make(map[string]*models.PatientScreening)},
		storage:         &fakeStorage{},
		publisher:       &fakeEventPublisher{},
	}

	fixture.internalConfig = &config.InternalConfig{}
	if primary {
		fixture.internalConfig.Screening.PrimaryQuestionnaireID = fixture.questionnaireID
	} else {
		fixture.internalConfig.Screening.FollowUpQuestionnaireID = fixture.questionnaireID
	}

	questionnaireRepo := &fakeQuestionnaireRepository{
		questionnaires: map[string]*models.Questionnaire{
			fixture.questionnaireID: {ID: questionnaireID, Status: constvars.StatusActive},
		},
	}

	fixture.usecase = NewResponseUsecase(
		fixture.responseRepo,
		questionnaireRepo,
		fixture.questionRepo,
		fixture.optionRepo,
		fixture.scoreBandRepo,
		fixture.screeningRepo,
		&fakeRedisRepository{},
		fixture.storage,
		fixture.publisher,
		fixture.internalConfig,
		zap.NewNop(),
	)
	return fixture
}

// addOrLogicGroup adds one top-level or_logic question with a yes and a no
// option and returns the question id plus the two option ids.
func (f *submissionFixture) addOrLogicGroup() (string, string, string) {
	questionnaireObjectID, _ := primitive.ObjectIDFromHex(f.questionnaireID)
	question := models.Question{
		ID:              primitive.NewObjectID(),
		QuestionnaireID: questionnaireObjectID,
		Status:          constvars.StatusActive,
		ScoringMethod:   constvars.ScoringMethodOrLogic,
		ScoringConfig:   models.ScoringConfig{IncludeMainQuestion: true},
	}
	f.questionRepo.questions = append(f.questionRepo.questions, question)

	yes := models.Option{ID: primitive.NewObjectID(), QuestionID: question.ID, Text: "Yes", Value: 1}
	no := models.Option{ID: primitive.NewObjectID(), QuestionID: question.ID, Text: "No", Value: 0}
	f.optionRepo.options = append(f.optionRepo.options, yes, no)

	return question.ID.Hex(), yes.ID.Hex(), no.ID.Hex()
}

func answerWith(questionID, optionID string) requests.SubmitAnswer {
	return requests.SubmitAnswer{QuestionID: questionID, OptionID: optionID}
}

func TestSubmitResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("scores and persists an anonymous submission", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()
		q2, _, no2 := fixture.addOrLogicGroup()

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1), answerWith(q2, no2)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalScore)
		assert.Len(t, result.PerQuestionScores, 2)
		assert.Empty(t, result.SkippedAnswerIDs)

		assert.Len(t, fixture.responseRepo.responses, 1)
		stored := fixture.responseRepo.responses[0]
		assert.Equal(t, constvars.ResponseStateScored, stored.State)
		assert.Equal(t, 1, stored.TotalScore)
		assert.Len(t, stored.Answers, 2)
	})

	t.Run("skips unresolvable answers but keeps the rest", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()
		ghostQuestion := primitive.NewObjectID().Hex()

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(q1, yes1),
				answerWith(ghostQuestion, primitive.NewObjectID().Hex()),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalScore)
		assert.Equal(t, []string{ghostQuestion}, result.SkippedAnswerIDs)
	})

	t.Run("skips answers whose option belongs to another question", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()
		q2, _, _ := fixture.addOrLogicGroup()

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(q1, yes1),
				answerWith(q2, yes1),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{q2}, result.SkippedAnswerIDs)
	})

	t.Run("excludes answers whose parent chain never reaches a top level", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()

		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)
		ghostRoot := primitive.NewObjectID()
		mid := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &ghostRoot,
			Status:           constvars.StatusActive,
		}
		leaf := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &mid.ID,
			Status:           constvars.StatusActive,
		}
		fixture.questionRepo.questions = append(fixture.questionRepo.questions, mid, leaf)
		leafYes := models.Option{ID: primitive.NewObjectID(), QuestionID: leaf.ID, Value: 1}
		fixture.optionRepo.options = append(fixture.optionRepo.options, leafYes)

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(q1, yes1),
				answerWith(leaf.ID.Hex(), leafYes.ID.Hex()),
			},
		})
		assert.NoError(t, err)
		// The orphaned answer never reaches a group, so it cannot move the
		// total.
		assert.Equal(t, 1, result.TotalScore)
		assert.Equal(t, []string{leaf.ID.Hex()}, result.SkippedAnswerIDs)
		assert.Len(t, result.PerQuestionScores, 1)
		assert.Equal(t, q1, result.PerQuestionScores[0].QuestionID)
	})

	t.Run("numeric answers resolve to their numeric value", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)
		question := models.Question{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: questionnaireObjectID,
			Status:          constvars.StatusActive,
			ScoringMethod:   constvars.ScoringMethodSimpleSum,
			ScoringConfig:   models.ScoringConfig{IncludeMainQuestion: true},
		}
		fixture.questionRepo.questions = append(fixture.questionRepo.questions, question)

		amount := 3.0
		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				{QuestionID: question.ID.Hex(), NumericAnswer: &amount},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalScore)
		assert.Empty(t, result.SkippedAnswerIDs)

		stored := fixture.responseRepo.responses[0]
		assert.Equal(t, 3, stored.Answers[0].ResolvedScore)
	})

	t.Run("free-text answers do not vote in the decision tree", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)
		main := models.Question{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: questionnaireObjectID,
			Status:          constvars.StatusActive,
			ScoringMethod:   constvars.ScoringMethodDecisionTree,
		}
		subA := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &main.ID,
			Status:           constvars.StatusActive,
		}
		subB := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &main.ID,
			Status:           constvars.StatusActive,
		}
		fixture.questionRepo.questions = append(fixture.questionRepo.questions, main, subA, subB)
		subAYes := models.Option{ID: primitive.NewObjectID(), QuestionID: subA.ID, Value: 1}
		fixture.optionRepo.options = append(fixture.optionRepo.options, subAYes)

		note := "prefers not to say"
		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(subA.ID.Hex(), subAYes.ID.Hex()),
				{QuestionID: subB.ID.Hex(), TextAnswer: &note},
			},
		})
		assert.NoError(t, err)
		// Only the option-backed answer votes; the note is persisted but
		// carries no score, so no tie forms.
		assert.Equal(t, 1, result.TotalScore)
		assert.Empty(t, result.SkippedAnswerIDs)

		stored := fixture.responseRepo.responses[0]
		assert.Len(t, stored.Answers, 2)
		assert.Equal(t, 0, stored.Answers[1].ResolvedScore)
	})

	t.Run("rejects when no answer is resolvable", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		fixture.addOrLogicGroup()

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()),
			},
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects primary resubmission for a screened patient", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()
		fixture.screeningRepo.screenings["patient-1"] = &models.PatientScreening{
			PatientID: "patient-1",
			Screened:  true,
		}

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-1",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("rejects follow-up when the gate is not satisfied", func(t *testing.T) {
		fixture := newSubmissionFixture(false)
		q1, yes1, _ := fixture.addOrLogicGroup()

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-2",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("accepts follow-up when the flag lags behind a qualifying primary", func(t *testing.T) {
		fixture := newSubmissionFixture(false)
		q1, yes1, _ := fixture.addOrLogicGroup()

		primaryID := primitive.NewObjectID()
		fixture.internalConfig.Screening.PrimaryQuestionnaireID = primaryID.Hex()
		fixture.responseRepo.responses = append(fixture.responseRepo.responses, &models.Response{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: primaryID,
			PatientID:       "patient-7",
			TotalScore:      5,
			CreatedAt:       time.Now().UTC(),
		})

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-7",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalScore)
	})

	t.Run("rejects follow-up when the latest primary score is out of range", func(t *testing.T) {
		fixture := newSubmissionFixture(false)
		q1, yes1, _ := fixture.addOrLogicGroup()

		primaryID := primitive.NewObjectID()
		fixture.internalConfig.Screening.PrimaryQuestionnaireID = primaryID.Hex()
		fixture.responseRepo.responses = append(fixture.responseRepo.responses, &models.Response{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: primaryID,
			PatientID:       "patient-8",
			TotalScore:      8,
			CreatedAt:       time.Now().UTC(),
		})

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-8",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})

	t.Run("accepts follow-up for an eligible patient", func(t *testing.T) {
		fixture := newSubmissionFixture(false)
		q1, yes1, _ := fixture.addOrLogicGroup()
		fixture.screeningRepo.screenings["patient-3"] = &models.PatientScreening{
			PatientID:        "patient-3",
			Screened:         true,
			FollowUpEligible: true,
		}

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-3",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalScore)
		// Follow-up totals never unlock anything themselves.
		assert.False(t, result.FollowUpEligible)
	})

	t.Run("medium score flips the eligibility flag and publishes the event", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		answers := make([]requests.SubmitAnswer, 0, 5)
		for i := 0; i < 5; i++ {
			q, yes, _ := fixture.addOrLogicGroup()
			answers = append(answers, answerWith(q, yes))
		}

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-4",
			Answers:         answers,
		})
		assert.NoError(t, err)
		assert.Equal(t, 5, result.TotalScore)
		assert.True(t, result.FollowUpEligible)

		flag := fixture.screeningRepo.screenings["patient-4"]
		assert.NotNil(t, flag)
		assert.True(t, flag.Screened)
		assert.True(t, flag.FollowUpEligible)
		assert.Equal(t, 5, *flag.LatestTotalScore)

		assert.Len(t, fixture.publisher.events, 1)
		assert.Equal(t, constvars.RiskLevelMedium, fixture.publisher.events[0].RiskLevel)
		assert.Len(t, fixture.storage.objects, 1)
	})

	t.Run("low score records a screened but ineligible patient", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()
		q2, _, no2 := fixture.addOrLogicGroup()

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-5",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1), answerWith(q2, no2)},
		})
		assert.NoError(t, err)
		assert.False(t, result.FollowUpEligible)

		flag := fixture.screeningRepo.screenings["patient-5"]
		assert.True(t, flag.Screened)
		assert.False(t, flag.FollowUpEligible)
	})

	t.Run("classification comes from the matching score band", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()

		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)
		fixture.scoreBandRepo.bands = []models.ScoreBand{
			{QuestionnaireID: questionnaireObjectID, MinScore: 0, MaxScore: 2, Interpretation: "minimal concern", Recommendation: "no action"},
			{QuestionnaireID: questionnaireObjectID, MinScore: 3, MaxScore: 7, Interpretation: "moderate concern", Recommendation: "follow up"},
		}

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)
		assert.NotNil(t, result.Classification)
		assert.Equal(t, constvars.RiskLevelLow, result.Classification.Status)
		assert.Equal(t, "minimal concern", result.Classification.Interpretation)
		assert.Equal(t, "no action", result.Classification.Recommendation)
	})

	t.Run("history is append-only across resubmissions", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, no1 := fixture.addOrLogicGroup()

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)

		_, err = fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, no1)},
		})
		assert.NoError(t, err)

		assert.Len(t, fixture.responseRepo.responses, 2)
		assert.Equal(t, 1, fixture.responseRepo.responses[0].TotalScore)
		assert.Equal(t, 0, fixture.responseRepo.responses[1].TotalScore)
	})

	t.Run("unknown questionnaire is a not found error", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: primitive.NewObjectID().Hex(),
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestGroupedSubQuestionScoring(t *testing.T) {
	ctx := context.Background()

	t.Run("sub-answers score through their group main question", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)

		main := models.Question{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: questionnaireObjectID,
			Status:          constvars.StatusActive,
			ScoringMethod:   constvars.ScoringMethodDecisionTree,
		}
		subA := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &main.ID,
			Status:           constvars.StatusActive,
		}
		subB := models.Question{
			ID:               primitive.NewObjectID(),
			QuestionnaireID:  questionnaireObjectID,
			ParentQuestionID: &main.ID,
			Status:           constvars.StatusActive,
		}
		fixture.questionRepo.questions = append(fixture.questionRepo.questions, main, subA, subB)

		mainYes := models.Option{ID: primitive.NewObjectID(), QuestionID: main.ID, Value: 1}
		subAYes := models.Option{ID: primitive.NewObjectID(), QuestionID: subA.ID, Value: 1}
		subBYes := models.Option{ID: primitive.NewObjectID(), QuestionID: subB.ID, Value: 1}
		fixture.optionRepo.options = append(fixture.optionRepo.options, mainYes, subAYes, subBYes)

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(main.ID.Hex(), mainYes.ID.Hex()),
				answerWith(subA.ID.Hex(), subAYes.ID.Hex()),
				answerWith(subB.ID.Hex(), subBYes.ID.Hex()),
			},
		})
		assert.NoError(t, err)
		// One group: both sub-answers vote one, main excluded by default.
		assert.Equal(t, 1, result.TotalScore)
		assert.Len(t, result.PerQuestionScores, 1)
		assert.Equal(t, main.ID.Hex(), result.PerQuestionScores[0].QuestionID)
		assert.Equal(t, constvars.ScoringMethodDecisionTree, result.PerQuestionScores[0].Method)
	})

	t.Run("shared group key merges two top-level questions into one group", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		questionnaireObjectID, _ := primitive.ObjectIDFromHex(fixture.questionnaireID)
		groupKey := 4

		first := models.Question{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: questionnaireObjectID,
			GroupKey:        &groupKey,
			Status:          constvars.StatusActive,
			ScoringMethod:   constvars.ScoringMethodSimpleSum,
			ScoringConfig:   models.ScoringConfig{IncludeMainQuestion: true},
		}
		second := models.Question{
			ID:              primitive.NewObjectID(),
			QuestionnaireID: questionnaireObjectID,
			GroupKey:        &groupKey,
			Status:          constvars.StatusActive,
			ScoringMethod:   constvars.ScoringMethodSimpleSum,
			ScoringConfig:   models.ScoringConfig{IncludeMainQuestion: true},
		}
		fixture.questionRepo.questions = append(fixture.questionRepo.questions, first, second)

		firstYes := models.Option{ID: primitive.NewObjectID(), QuestionID: first.ID, Value: 1}
		secondYes := models.Option{ID: primitive.NewObjectID(), QuestionID: second.ID, Value: 1}
		fixture.optionRepo.options = append(fixture.optionRepo.options, firstYes, secondYes)

		result, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers: []requests.SubmitAnswer{
				answerWith(first.ID.Hex(), firstYes.ID.Hex()),
				answerWith(second.ID.Hex(), secondYes.ID.Hex()),
			},
		})
		assert.NoError(t, err)
		assert.Len(t, result.PerQuestionScores, 1)
		assert.Equal(t, 1, result.TotalScore)
	})
}

func TestFindAndListResponses(t *testing.T) {
	ctx := context.Background()

	t.Run("find by id returns the stored detail", func(t *testing.T) {
		fixture := newSubmissionFixture(true)
		q1, yes1, _ := fixture.addOrLogicGroup()

		submitted, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)

		detail, err := fixture.usecase.FindResponseByID(ctx, submitted.ResponseID)
		assert.NoError(t, err)
		assert.Equal(t, submitted.ResponseID, detail.ResponseID)
		assert.Equal(t, constvars.ResponseStateScored, detail.State)
		assert.Equal(t, 1, detail.TotalScore)
		assert.Len(t, detail.Answers, 1)
	})

	t.Run("find by id on unknown response is not found", func(t *testing.T) {
		fixture := newSubmissionFixture(true)

		_, err := fixture.usecase.FindResponseByID(ctx, primitive.NewObjectID().Hex())
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("list filters by patient", func(t *testing.T) {
		fixture := newSubmissionFixture(false)
		q1, yes1, _ := fixture.addOrLogicGroup()
		fixture.screeningRepo.screenings["patient-6"] = &models.PatientScreening{
			PatientID: "patient-6", Screened: true, FollowUpEligible: true,
		}

		_, err := fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-6",
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)

		_, err = fixture.usecase.SubmitResponse(ctx, &requests.SubmitResponse{
			QuestionnaireID: fixture.questionnaireID,
			Answers:         []requests.SubmitAnswer{answerWith(q1, yes1)},
		})
		assert.NoError(t, err)

		results, total, err := fixture.usecase.ListResponses(ctx, &requests.ListResponses{
			QuestionnaireID: fixture.questionnaireID,
			PatientID:       "patient-6",
			Page:            1,
			PageSize:        10,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, results, 1)
		assert.Equal(t, "patient-6", results[0].PatientID)
	})
}
