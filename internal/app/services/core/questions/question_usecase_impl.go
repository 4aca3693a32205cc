package questions

import (
	"context"
	"fmt"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
	"screening-service/internal/pkg/exceptions"
	"screening-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxParentDepth bounds the ancestor walk when validating re-parenting, so a
// corrupted chain cannot spin the usecase.
const maxParentDepth = 50

const resolverCacheKeyFormat = "resolver:%s:%s:%s"

type questionUsecase struct {
	QuestionRepository      contracts.QuestionRepository
	OptionRepository        contracts.OptionRepository
	QuestionnaireRepository contracts.QuestionnaireRepository
	RedisRepository         contracts.RedisRepository
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewQuestionUsecase(
	questionRepository contracts.QuestionRepository,
	optionRepository contracts.OptionRepository,
	questionnaireRepository contracts.QuestionnaireRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionUsecase {
	return &questionUsecase{
		QuestionRepository:      questionRepository,
		OptionRepository:        optionRepository,
		QuestionnaireRepository: questionnaireRepository,
		RedisRepository:         redisRepository,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

func (uc *questionUsecase) CreateQuestion(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error) {
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

	var parentObjectID *primitive.ObjectID
	if request.ParentQuestionID != "" {
		parent, err := uc.validateParent(ctx, request.QuestionnaireID, request.ParentQuestionID, "")
		if err != nil {
			return nil, err
		}
		parentObjectID = &parent.ID
	}

	now := time.Now().UTC()
	question := &models.Question{
		QuestionnaireID:  questionnaire.ID,
		ParentQuestionID: parentObjectID,
		GroupKey:         request.GroupKey,
		Prompt:           request.Prompt,
		Required:         request.Required,
		Status:           constvars.StatusActive,
		Sequence:         request.Sequence,
		ScoringMethod:    request.ScoringMethod,
		ScoringConfig:    buildScoringConfig(request.ScoringConfig),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	questionID, err := uc.QuestionRepository.Insert(ctx, question)
	if err != nil {
		return nil, err
	}

	for _, optionRequest := range request.Options {
		if _, err := uc.CreateOption(ctx, questionID, &optionRequest); err != nil {
			return nil, err
		}
	}

	uc.invalidateResolverCache(ctx, request.QuestionnaireID)
	return uc.QuestionRepository.FindByID(ctx, questionID)
}

func (uc *questionUsecase) UpdateQuestion(ctx context.Context, request *requests.UpdateQuestion) (*models.Question, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	question, err := uc.FindQuestionByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	question.ParentQuestionID = nil
	if request.ParentQuestionID != "" {
		parent, err := uc.validateParent(ctx, question.QuestionnaireID.Hex(), request.ParentQuestionID, request.ID)
		if err != nil {
			return nil, err
		}
		question.ParentQuestionID = &parent.ID
	}

	question.GroupKey = request.GroupKey
	question.Prompt = request.Prompt
	question.Required = request.Required
	if request.Status != "" {
		question.Status = request.Status
	}
	question.Sequence = request.Sequence
	question.ScoringMethod = request.ScoringMethod
	question.ScoringConfig = buildScoringConfig(request.ScoringConfig)
	question.UpdatedAt = time.Now().UTC()

	if err := uc.QuestionRepository.Update(ctx, question); err != nil {
		return nil, err
	}

	uc.invalidateResolverCache(ctx, question.QuestionnaireID.Hex())
	return question, nil
}

func (uc *questionUsecase) FindQuestionByID(ctx context.Context, questionID string) (*models.Question, error) {
	question, err := uc.QuestionRepository.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, exceptions.ErrQuestionNotFound(fmt.Errorf("question %s not found", questionID))
	}
	return question, nil
}

func (uc *questionUsecase) FindQuestionsByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.Question, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("questionnaire %s not found", questionnaireID))
	}
	return uc.QuestionRepository.FindByQuestionnaireID(ctx, questionnaireID)
}

func (uc *questionUsecase) DeleteQuestionByID(ctx context.Context, questionID string) error {
	question, err := uc.FindQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}
	if err := uc.QuestionRepository.SoftDeleteByID(ctx, questionID); err != nil {
		return err
	}

	uc.invalidateResolverCache(ctx, question.QuestionnaireID.Hex())
	return nil
}

func (uc *questionUsecase) CreateOption(ctx context.Context, questionID string, request *requests.CreateOption) (*models.Option, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	question, err := uc.FindQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	conditionalIDs, err := toObjectIDs(request.ConditionalSubQuestionIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	option := &models.Option{
		QuestionID:                question.ID,
		Text:                      request.Text,
		Value:                     request.Value,
		Sequence:                  request.Sequence,
		ConditionalSubQuestionIDs: conditionalIDs,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}

	optionID, err := uc.OptionRepository.Insert(ctx, option)
	if err != nil {
		return nil, err
	}

	uc.invalidateResolverCache(ctx, question.QuestionnaireID.Hex())
	return uc.OptionRepository.FindByID(ctx, optionID)
}

func (uc *questionUsecase) UpdateOption(ctx context.Context, request *requests.UpdateOption) (*models.Option, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	option, err := uc.OptionRepository.FindByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, exceptions.ErrQuestionNotFound(fmt.Errorf("option %s not found", request.ID))
	}

	conditionalIDs, err := toObjectIDs(request.ConditionalSubQuestionIDs)
	if err != nil {
		return nil, err
	}

	option.Text = request.Text
	option.Value = request.Value
	option.Sequence = request.Sequence
	option.ConditionalSubQuestionIDs = conditionalIDs
	option.UpdatedAt = time.Now().UTC()

	if err := uc.OptionRepository.Update(ctx, option); err != nil {
		return nil, err
	}

	uc.invalidateResolverCacheForOption(ctx, option)
	return option, nil
}

func (uc *questionUsecase) DeleteOptionByID(ctx context.Context, optionID string) error {
	option, err := uc.OptionRepository.FindByID(ctx, optionID)
	if err != nil {
		return err
	}
	if option == nil {
		return exceptions.ErrQuestionNotFound(fmt.Errorf("option %s not found", optionID))
	}
	if err := uc.OptionRepository.SoftDeleteByID(ctx, optionID); err != nil {
		return err
	}

	uc.invalidateResolverCacheForOption(ctx, option)
	return nil
}

// invalidateResolverCache drops every cached resolver result for the
// questionnaire after a bank edit. Best effort: a failed delete only means
// stale entries live until their TTL expires.
func (uc *questionUsecase) invalidateResolverCache(ctx context.Context, questionnaireID string) {
	pattern := fmt.Sprintf(resolverCacheKeyFormat, questionnaireID, "*", "*")
	if err := uc.RedisRepository.DeleteByPattern(ctx, pattern); err != nil {
		uc.Log.Warn("failed to invalidate resolver cache",
			zap.String("questionnaire_id", questionnaireID),
			zap.Error(err),
		)
	}
}

// invalidateResolverCacheForOption resolves the questionnaire owning the
// option's question and drops its cached resolver results.
func (uc *questionUsecase) invalidateResolverCacheForOption(ctx context.Context, option *models.Option) {
	question, err := uc.QuestionRepository.FindByID(ctx, option.QuestionID.Hex())
	if err != nil || question == nil {
		uc.Log.Warn("failed to resolve questionnaire for resolver cache invalidation",
			zap.String("option_id", option.ID.Hex()),
			zap.Error(err),
		)
		return
	}
	uc.invalidateResolverCache(ctx, question.QuestionnaireID.Hex())
}

// ResolveVisibleSubQuestions decides which sub-questions the selected option
// reveals. An option carrying an override list is authoritative, even across
// branches; otherwise every active structural child of the parent is shown.
// No visible sub-questions is a normal outcome, not an error.
func (uc *questionUsecase) ResolveVisibleSubQuestions(ctx context.Context, request *requests.ResolveSubQuestions) ([]responses.SubQuestion, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	cacheKey := fmt.Sprintf(resolverCacheKeyFormat, request.QuestionnaireID, request.ParentQuestionID, request.OptionID)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var subQuestions []responses.SubQuestion
		if err := json.Unmarshal([]byte(cached), &subQuestions); err == nil {
			return subQuestions, nil
		}
	}

	subQuestions, err := uc.resolveSubQuestions(ctx, request)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.ResolverCacheTTLInSeconds) * time.Second
	if ttl > 0 {
		if err := uc.RedisRepository.Set(ctx, cacheKey, subQuestions, ttl); err != nil {
			uc.Log.Warn("failed to cache resolver result",
				zap.String("key", cacheKey),
				zap.Error(err),
			)
		}
	}
	return subQuestions, nil
}

func (uc *questionUsecase) resolveSubQuestions(ctx context.Context, request *requests.ResolveSubQuestions) ([]responses.SubQuestion, error) {
	option, err := uc.OptionRepository.FindByID(ctx, request.OptionID)
	if err != nil {
		return nil, err
	}

	var visible []models.Question
	if option != nil && len(option.ConditionalSubQuestionIDs) > 0 {
		ids := make([]string, 0, len(option.ConditionalSubQuestionIDs))
		for _, id := range option.ConditionalSubQuestionIDs {
			ids = append(ids, id.Hex())
		}
		visible, err = uc.QuestionRepository.FindActiveByIDs(ctx, ids)
	} else {
		visible, err = uc.QuestionRepository.FindActiveChildren(ctx, request.QuestionnaireID, request.ParentQuestionID)
	}
	if err != nil {
		return nil, err
	}

	return uc.buildSubQuestionDTOs(ctx, visible)
}

func (uc *questionUsecase) buildSubQuestionDTOs(ctx context.Context, visible []models.Question) ([]responses.SubQuestion, error) {
	subQuestions := make([]responses.SubQuestion, 0, len(visible))
	if len(visible) == 0 {
		return subQuestions, nil
	}

	questionIDs := make([]string, 0, len(visible))
	for _, q := range visible {
		questionIDs = append(questionIDs, q.ID.Hex())
	}
	questionOptions, err := uc.OptionRepository.FindByQuestionIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	optionsByQuestion := make(map[string][]responses.SubQuestionOption)
	for _, o := range questionOptions {
		questionID := o.QuestionID.Hex()
		optionsByQuestion[questionID] = append(optionsByQuestion[questionID], responses.SubQuestionOption{
			ID:       o.ID.Hex(),
			Text:     o.Text,
			Value:    o.Value,
			Sequence: o.Sequence,
		})
	}

	for _, q := range visible {
		subQuestion := responses.SubQuestion{
			ID:              q.ID.Hex(),
			QuestionnaireID: q.QuestionnaireID.Hex(),
			Prompt:          q.Prompt,
			Required:        q.Required,
			Sequence:        q.Sequence,
			Options:         optionsByQuestion[q.ID.Hex()],
		}
		if q.ParentQuestionID != nil {
			subQuestion.ParentQuestionID = q.ParentQuestionID.Hex()
		}
		subQuestions = append(subQuestions, subQuestion)
	}
	return subQuestions, nil
}

// validateParent enforces the two structural invariants on re-parenting: the
// parent must live in the same questionnaire, and the parent chain must never
// loop back through the question being written.
func (uc *questionUsecase) validateParent(ctx context.Context, questionnaireID, parentQuestionID, selfQuestionID string) (*models.Question, error) {
	if selfQuestionID != "" && parentQuestionID == selfQuestionID {
		return nil, exceptions.ErrQuestionParentCycle(fmt.Errorf("question %s cannot parent itself", selfQuestionID))
	}

	parent, err := uc.QuestionRepository.FindByID(ctx, parentQuestionID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, exceptions.ErrQuestionNotFound(fmt.Errorf("parent question %s not found", parentQuestionID))
	}
	if parent.QuestionnaireID.Hex() != questionnaireID {
		return nil, exceptions.ErrQuestionParentOtherQuestionnaire(
			fmt.Errorf("parent question %s belongs to questionnaire %s", parentQuestionID, parent.QuestionnaireID.Hex()),
		)
	}

	ancestor := parent
	for depth := 0; ancestor.ParentQuestionID != nil; depth++ {
		if depth >= maxParentDepth {
			return nil, exceptions.ErrQuestionParentCycle(fmt.Errorf("parent chain of %s exceeds max depth", parentQuestionID))
		}
		ancestorID := ancestor.ParentQuestionID.Hex()
		if selfQuestionID != "" && ancestorID == selfQuestionID {
			return nil, exceptions.ErrQuestionParentCycle(fmt.Errorf("question %s is an ancestor of %s", selfQuestionID, parentQuestionID))
		}
		ancestor, err = uc.QuestionRepository.FindByID(ctx, ancestorID)
		if err != nil {
			return nil, err
		}
		if ancestor == nil {
			break
		}
	}

	return parent, nil
}

func buildScoringConfig(request *requests.ScoringConfig) models.ScoringConfig {
	if request == nil {
		return models.ScoringConfig{}
	}
	return models.ScoringConfig{
		Threshold:           request.Threshold,
		AboveThresholdScore: request.AboveThresholdScore,
		BelowThresholdScore: request.BelowThresholdScore,
		Weights:             request.Weights,
		IncludeMainQuestion: request.IncludeMainQuestion,
		TieBreakHigh:        request.TieBreakHigh,
	}
}

func toObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs, nil
}
