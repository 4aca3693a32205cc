package responses

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/app/services/core/scoring"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	dtoresponses "screening-service/internal/pkg/dto/responses"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const eligibilityCacheKeyFormat = "screening:eligibility:%s"

type responseUsecase struct {
	ResponseRepository         contracts.ResponseRepository
	QuestionnaireRepository    contracts.QuestionnaireRepository
	QuestionRepository         contracts.QuestionRepository
	OptionRepository           contracts.OptionRepository
	ScoreBandRepository        contracts.ScoreBandRepository
	PatientScreeningRepository contracts.PatientScreeningRepository
	RedisRepository            contracts.RedisRepository
	Storage                    contracts.Storage
	EventPublisher             contracts.EventPublisher
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewResponseUsecase(
	responseRepository contracts.ResponseRepository,
	questionnaireRepository contracts.QuestionnaireRepository,
	questionRepository contracts.QuestionRepository,
	optionRepository contracts.OptionRepository,
	scoreBandRepository contracts.ScoreBandRepository,
	patientScreeningRepository contracts.PatientScreeningRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ResponseUsecase {
	return &responseUsecase{
		ResponseRepository:         responseRepository,
		QuestionnaireRepository:    questionnaireRepository,
		QuestionRepository:         questionRepository,
		OptionRepository:           optionRepository,
		ScoreBandRepository:        scoreBandRepository,
		PatientScreeningRepository: patientScreeningRepository,
		RedisRepository:            redisRepository,
		Storage:                    storage,
		EventPublisher:             eventPublisher,
		InternalConfig:             internalConfig,
		Log:                        logger,
	}
}

// SubmitResponse runs the whole submission pipeline: preconditions, partial
// answer resolution against the current bank snapshot, scoring, persistence
// and the post-persist side effects. The response document is inserted
// already scored; there is no submitted-but-unscored intermediate state.
func (uc *responseUsecase) SubmitResponse(ctx context.Context, request *requests.SubmitResponse) (*dtoresponses.SubmitResponseResult, error) {
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

	if err := uc.checkPreconditions(ctx, request); err != nil {
		return nil, err
	}

	snapshot, err := uc.loadSnapshot(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}

	answers, scoringAnswers, skipped := uc.resolveAnswers(request, snapshot)
	if len(answers) == 0 {
		return nil, exceptions.ErrNoAnswersResolvable(fmt.Errorf("0 of %d answers resolvable", len(request.Answers)))
	}

	groups := scoring.GroupAnswers(scoringAnswers)
	groupScores, totalScore := scoring.ScoreGroups(groups, uc.buildGroupSpecs(groups, snapshot))

	response := &models.Response{
		QuestionnaireID:  questionnaire.ID,
		PatientID:        request.PatientID,
		State:            constvars.ResponseStateScored,
		TotalScore:       totalScore,
		Answers:          answers,
		GroupScores:      toModelGroupScores(groupScores),
		SkippedAnswerIDs: skipped,
		CreatedAt:        time.Now().UTC(),
	}

	responseID, err := uc.ResponseRepository.Insert(ctx, response)
	if err != nil {
		return nil, err
	}
	if responseObjectID, err := primitive.ObjectIDFromHex(responseID); err == nil {
		response.ID = responseObjectID
	}

	isPrimary := request.QuestionnaireID == uc.InternalConfig.Screening.PrimaryQuestionnaireID
	followUpEligible := isPrimary && scoring.FollowUpEligible(totalScore)

	if isPrimary && request.PatientID != "" {
		if err := uc.recordScreeningOutcome(ctx, request.PatientID, responseID, totalScore, followUpEligible); err != nil {
			return nil, err
		}
	}

	classification, err := uc.classify(ctx, request.QuestionnaireID, totalScore, isPrimary)
	if err != nil {
		return nil, err
	}

	uc.archiveSubmission(ctx, request.QuestionnaireID, responseID, response)
	uc.publishCompletion(ctx, request, responseID, totalScore, followUpEligible, isPrimary)

	return &dtoresponses.SubmitResponseResult{
		ResponseID:        responseID,
		TotalScore:        totalScore,
		PerQuestionScores: toPerQuestionScores(groupScores),
		Classification:    classification,
		FollowUpEligible:  followUpEligible,
		SkippedAnswerIDs:  skipped,
	}, nil
}

func (uc *responseUsecase) FindResponseByID(ctx context.Context, responseID string) (*dtoresponses.ResponseDetail, error) {
	response, err := uc.ResponseRepository.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(fmt.Errorf("response %s not found", responseID))
	}
	return toResponseDetail(response), nil
}

func (uc *responseUsecase) ListResponses(ctx context.Context, request *requests.ListResponses) ([]dtoresponses.ResponseDetail, int, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, 0, exceptions.ErrInputValidation(err)
	}

	results, total, err := uc.ResponseRepository.FindByPatientAndQuestionnaire(ctx, request.PatientID, request.QuestionnaireID, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	details := make([]dtoresponses.ResponseDetail, 0, len(results))
	for i := range results {
		details = append(details, *toResponseDetail(&results[i]))
	}
	return details, total, nil
}

// checkPreconditions rejects submissions the eligibility rules forbid. Both
// rejections are business outcomes, never server errors, and both only apply
// when a patient identity accompanies the submission.
func (uc *responseUsecase) checkPreconditions(ctx context.Context, request *requests.SubmitResponse) error {
	if request.PatientID == "" {
		return nil
	}

	switch request.QuestionnaireID {
	case uc.InternalConfig.Screening.PrimaryQuestionnaireID:
		screening, err := uc.PatientScreeningRepository.FindByPatientID(ctx, request.PatientID)
		if err != nil {
			return err
		}
		if screening != nil && screening.Screened {
			return exceptions.ErrPatientAlreadyScreened(fmt.Errorf("patient %s already screened", request.PatientID))
		}
	case uc.InternalConfig.Screening.FollowUpQuestionnaireID:
		screening, err := uc.PatientScreeningRepository.FindByPatientID(ctx, request.PatientID)
		if err != nil {
			return err
		}
		if screening != nil && screening.FollowUpEligible {
			return nil
		}
		// The flag document can lag behind or be missing; the latest primary
		// response is the record it is derived from, so consult it before
		// rejecting.
		if primaryID := uc.InternalConfig.Screening.PrimaryQuestionnaireID; primaryID != "" {
			latest, err := uc.ResponseRepository.FindLatestByPatientAndQuestionnaire(ctx, request.PatientID, primaryID)
			if err != nil {
				return err
			}
			if latest != nil && scoring.FollowUpEligible(latest.TotalScore) {
				return nil
			}
		}
		return exceptions.ErrFollowUpGateNotSatisfied(fmt.Errorf("patient %s has no qualifying primary score", request.PatientID))
	}
	return nil
}

// bankSnapshot is the question bank state captured once per submission, so a
// concurrent bank edit cannot make one submission score against two versions.
type bankSnapshot struct {
	questionsByID map[string]models.Question
	optionsByID   map[string]models.Option
}

func (uc *responseUsecase) loadSnapshot(ctx context.Context, questionnaireID string) (*bankSnapshot, error) {
	questions, err := uc.QuestionRepository.FindByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]string, 0, len(questions))
	questionsByID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID.Hex())
		questionsByID[q.ID.Hex()] = q
	}

	options, err := uc.OptionRepository.FindByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}
	optionsByID := make(map[string]models.Option, len(options))
	for _, o := range options {
		optionsByID[o.ID.Hex()] = o
	}

	return &bankSnapshot{questionsByID: questionsByID, optionsByID: optionsByID}, nil
}

// resolveAnswers keeps every answer that still references a live question
// whose parent chain reaches a top-level question, and a live option of that
// question when one is named. Anything else lands in the skipped list; the
// submission succeeds as long as one answer survives. The resolved score is
// the option's value, or the numeric value for option-less numeric answers;
// pure free-text answers are persisted but carry no score into the group
// tally.
func (uc *responseUsecase) resolveAnswers(request *requests.SubmitResponse, snapshot *bankSnapshot) ([]models.Answer, []scoring.Answer, []string) {
	answers := make([]models.Answer, 0, len(request.Answers))
	scoringAnswers := make([]scoring.Answer, 0, len(request.Answers))
	var skipped []string

	for _, submitted := range request.Answers {
		question, ok := snapshot.questionsByID[submitted.QuestionID]
		if !ok || question.Status != constvars.StatusActive {
			skipped = append(skipped, submitted.QuestionID)
			continue
		}

		root, depth, ok := snapshot.rootOf(submitted.QuestionID)
		if !ok {
			// Group membership is undeterminable, so the answer cannot be
			// scored under any question.
			skipped = append(skipped, submitted.QuestionID)
			continue
		}

		var optionID *primitive.ObjectID
		resolvedScore := 0
		carriesScore := true
		if submitted.OptionID != "" {
			option, ok := snapshot.optionsByID[submitted.OptionID]
			if !ok || option.QuestionID.Hex() != submitted.QuestionID {
				skipped = append(skipped, submitted.QuestionID)
				continue
			}
			optionID = &option.ID
			resolvedScore = option.Value
		} else if submitted.NumericAnswer != nil {
			resolvedScore = int(math.Round(*submitted.NumericAnswer))
		} else {
			carriesScore = false
		}

		answers = append(answers, models.Answer{
			ID:            primitive.NewObjectID(),
			QuestionID:    question.ID,
			OptionID:      optionID,
			TextAnswer:    submitted.TextAnswer,
			NumericAnswer: submitted.NumericAnswer,
			ResolvedScore: resolvedScore,
			NestedLevel:   depth,
		})
		if carriesScore {
			scoringAnswers = append(scoringAnswers, scoring.Answer{
				AnswerID:    submitted.QuestionID,
				QuestionID:  submitted.QuestionID,
				GroupKey:    groupKeyOf(root),
				OptionValue: resolvedScore,
				NestedLevel: depth,
				IsGroupMain: submitted.QuestionID == root.ID.Hex(),
			})
		}
	}

	return answers, scoringAnswers, skipped
}

// rootOf walks the parent chain up to the top-level question and reports the
// walk depth as the answer's nesting level, with the top level being one.
// It reports false when the chain breaks before reaching a top-level
// question, as with orphaned mid-migration data.
func (s *bankSnapshot) rootOf(questionID string) (models.Question, int, bool) {
	question := s.questionsByID[questionID]
	depth := 1
	for question.ParentQuestionID != nil {
		if depth >= 10 {
			return question, depth, false
		}
		parent, ok := s.questionsByID[question.ParentQuestionID.Hex()]
		if !ok {
			return question, depth, false
		}
		question = parent
		depth++
	}
	return question, depth, true
}

// groupKeyOf names the scoring group a top-level question owns: its explicit
// group key when configured, otherwise the question stands alone.
func groupKeyOf(root models.Question) string {
	if root.GroupKey != nil {
		return strconv.Itoa(*root.GroupKey)
	}
	return root.ID.Hex()
}

func (uc *responseUsecase) buildGroupSpecs(groups []scoring.Group, snapshot *bankSnapshot) map[string]scoring.GroupSpec {
	nonScoring := make(map[string]bool, len(uc.InternalConfig.Screening.NonScoringQuestionIDs))
	for _, id := range uc.InternalConfig.Screening.NonScoringQuestionIDs {
		nonScoring[id] = true
	}

	mainByGroupKey := make(map[string]models.Question)
	for _, q := range snapshot.questionsByID {
		if q.ParentQuestionID != nil {
			continue
		}
		key := groupKeyOf(q)
		// The lowest id wins when several top-level questions share a key,
		// keeping the owning question deterministic.
		if existing, ok := mainByGroupKey[key]; !ok || q.ID.Hex() < existing.ID.Hex() {
			mainByGroupKey[key] = q
		}
	}

	specs := make(map[string]scoring.GroupSpec, len(groups))
	for _, g := range groups {
		main, ok := mainByGroupKey[g.Key]
		if !ok {
			continue
		}
		specs[g.Key] = scoring.GroupSpec{
			QuestionID: main.ID.Hex(),
			Method:     main.ScoringMethod,
			Config: scoring.Config{
				Threshold:           main.ScoringConfig.Threshold,
				AboveThresholdScore: main.ScoringConfig.AboveThresholdScore,
				BelowThresholdScore: main.ScoringConfig.BelowThresholdScore,
				Weights:             main.ScoringConfig.Weights,
				IncludeMainQuestion: main.ScoringConfig.IncludeMainQuestion,
				TieBreakHigh:        main.ScoringConfig.TieBreakHigh,
				NonScoringQuestions: nonScoring,
			},
		}
	}
	return specs
}

func (uc *responseUsecase) classify(ctx context.Context, questionnaireID string, totalScore int, isPrimary bool) (*dtoresponses.Classification, error) {
	bands, err := uc.ScoreBandRepository.FindByQuestionnaireID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	classification := &dtoresponses.Classification{}
	if isPrimary {
		classification.Status = scoring.RiskLevel(totalScore)
	}
	for _, band := range bands {
		if totalScore >= band.MinScore && totalScore <= band.MaxScore {
			classification.Interpretation = band.Interpretation
			classification.Recommendation = band.Recommendation
			break
		}
	}

	if classification.Status == "" && classification.Interpretation == "" {
		return nil, nil
	}
	return classification, nil
}

func (uc *responseUsecase) recordScreeningOutcome(ctx context.Context, patientID, responseID string, totalScore int, followUpEligible bool) error {
	responseObjectID, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	screening := &models.PatientScreening{
		PatientID:        patientID,
		Screened:         true,
		LatestResponseID: &responseObjectID,
		LatestTotalScore: &totalScore,
		FollowUpEligible: followUpEligible,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := uc.PatientScreeningRepository.Upsert(ctx, screening); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(eligibilityCacheKeyFormat, patientID)
	ttl := time.Duration(uc.InternalConfig.App.EligibilityCacheTTLInHours) * time.Hour
	if ttl > 0 {
		if err := uc.RedisRepository.Set(ctx, cacheKey, screening, ttl); err != nil {
			uc.Log.Warn("failed to refresh eligibility cache",
				zap.String("patient_id", patientID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// archiveSubmission stores the raw scored document for audit. Archival never
// fails a submission that is already persisted.
func (uc *responseUsecase) archiveSubmission(ctx context.Context, questionnaireID, responseID string, response *models.Response) {
	payload, err := json.Marshal(response)
	if err != nil {
		uc.Log.Warn("failed to marshal submission for archive",
			zap.String("response_id", responseID),
			zap.Error(err),
		)
		return
	}

	objectKey := utils.GenerateArchiveObjectKey(questionnaireID, responseID)
	if err := uc.Storage.PutObject(ctx, objectKey, payload, constvars.MIMEApplicationJSON); err != nil {
		uc.Log.Warn("failed to archive submission",
			zap.String("response_id", responseID),
			zap.String("object_key", objectKey),
			zap.Error(err),
		)
	}
}

// publishCompletion emits the completion event for primary screenings. Like
// archival it is best effort once the response document exists.
func (uc *responseUsecase) publishCompletion(ctx context.Context, request *requests.SubmitResponse, responseID string, totalScore int, followUpEligible, isPrimary bool) {
	if !isPrimary {
		return
	}

	event := &contracts.ScreeningCompletedEvent{
		ResponseID:       responseID,
		QuestionnaireID:  request.QuestionnaireID,
		PatientID:        request.PatientID,
		TotalScore:       totalScore,
		RiskLevel:        scoring.RiskLevel(totalScore),
		FollowUpEligible: followUpEligible,
		SubmittedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishScreeningCompleted(ctx, event); err != nil {
		uc.Log.Warn("failed to publish screening completed event",
			zap.String("response_id", responseID),
			zap.Error(err),
		)
	}
}

func toModelGroupScores(groupScores []scoring.GroupScore) []models.GroupScore {
	result := make([]models.GroupScore, 0, len(groupScores))
	for _, gs := range groupScores {
		questionObjectID, err := primitive.ObjectIDFromHex(gs.QuestionID)
		if err != nil {
			questionObjectID = primitive.NilObjectID
		}
		result = append(result, models.GroupScore{
			GroupKey:   gs.GroupKey,
			QuestionID: questionObjectID,
			Method:     gs.Method,
			Score:      gs.Score,
		})
	}
	return result
}

func toPerQuestionScores(groupScores []scoring.GroupScore) []dtoresponses.PerQuestionScore {
	result := make([]dtoresponses.PerQuestionScore, 0, len(groupScores))
	for _, gs := range groupScores {
		result = append(result, dtoresponses.PerQuestionScore{
			QuestionID: gs.QuestionID,
			Score:      gs.Score,
			Method:     gs.Method,
		})
	}
	return result
}

func toResponseDetail(response *models.Response) *dtoresponses.ResponseDetail {
	answers := make([]dtoresponses.AnswerDetail, 0, len(response.Answers))
	for _, a := range response.Answers {
		answer := dtoresponses.AnswerDetail{
			QuestionID:    a.QuestionID.Hex(),
			TextAnswer:    a.TextAnswer,
			NumericAnswer: a.NumericAnswer,
			ResolvedScore: a.ResolvedScore,
		}
		if a.OptionID != nil {
			answer.OptionID = a.OptionID.Hex()
		}
		answers = append(answers, answer)
	}

	perQuestionScores := make([]dtoresponses.PerQuestionScore, 0, len(response.GroupScores))
	for _, gs := range response.GroupScores {
		perQuestionScores = append(perQuestionScores, dtoresponses.PerQuestionScore{
			QuestionID: gs.QuestionID.Hex(),
			Score:      gs.Score,
			Method:     gs.Method,
		})
	}

	return &dtoresponses.ResponseDetail{
		ResponseID:        response.ID.Hex(),
		QuestionnaireID:   response.QuestionnaireID.Hex(),
		PatientID:         response.PatientID,
		State:             response.State,
		TotalScore:        response.TotalScore,
		PerQuestionScores: perQuestionScores,
		Answers:           answers,
		SkippedAnswerIDs:  response.SkippedAnswerIDs,
		CreatedAt:         response.CreatedAt.Format(time.RFC3339),
	}
}
