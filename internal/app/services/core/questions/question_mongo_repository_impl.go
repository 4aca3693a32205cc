package questions

import (
	"context"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionMongoRepository(db *mongo.Client, dbName string) contracts.QuestionRepository {
	return &QuestionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestions),
	}
}

func (r *QuestionMongoRepository) FindByID(ctx context.Context, questionID string) (*models.Question, error) {
	objectID, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var question models.Question
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &question, nil
}

func (r *QuestionMongoRepository) FindActiveByIDs(ctx context.Context, questionIDs []string) ([]models.Question, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(questionIDs))
	for _, id := range questionIDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []models.Question{}, nil
	}

	filter := bson.M{
		"_id":       bson.M{"$in": objectIDs},
		"status":    constvars.StatusActive,
		"deletedAt": nil,
	}
	return r.findSortedByID(ctx, filter)
}

func (r *QuestionMongoRepository) FindActiveChildren(ctx context.Context, questionnaireID, parentQuestionID string) ([]models.Question, error) {
	questionnaireObjectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	parentObjectID, err := primitive.ObjectIDFromHex(parentQuestionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"questionnaireId":  questionnaireObjectID,
		"parentQuestionId": parentObjectID,
		"status":           constvars.StatusActive,
		"deletedAt":        nil,
	}
	return r.findSortedByID(ctx, filter)
}

func (r *QuestionMongoRepository) FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.Question, error) {
	questionnaireObjectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"questionnaireId": questionnaireObjectID, "deletedAt": nil}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questions := make([]models.Question, 0)
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questions, nil
}

func (r *QuestionMongoRepository) Insert(ctx context.Context, question *models.Question) (string, error) {
	result, err := r.Collection.InsertOne(ctx, question)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionMongoRepository) Update(ctx context.Context, question *models.Question) error {
	filter := bson.M{"_id": question.ID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{
		"parentQuestionId": question.ParentQuestionID,
		"groupKey":         question.GroupKey,
		"prompt":           question.Prompt,
		"required":         question.Required,
		"status":           question.Status,
		"sequence":         question.Sequence,
		"scoringMethod":    question.ScoringMethod,
		"scoringConfig":    question.ScoringConfig,
		"updatedAt":        question.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *QuestionMongoRepository) SoftDeleteByID(ctx context.Context, questionID string) error {
	objectID, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// findSortedByID keeps resolver output deterministic: ascending object id,
// which is also chronological insertion order.
func (r *QuestionMongoRepository) findSortedByID(ctx context.Context, filter bson.M) ([]models.Question, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questions := make([]models.Question, 0)
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questions, nil
}
