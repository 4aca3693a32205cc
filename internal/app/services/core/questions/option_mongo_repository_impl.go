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

type OptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewOptionMongoRepository(db *mongo.Client, dbName string) contracts.OptionRepository {
	return &OptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOptions),
	}
}

func (r *OptionMongoRepository) FindByID(ctx context.Context, optionID string) (*models.Option, error) {
	objectID, err := primitive.ObjectIDFromHex(optionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var option models.Option
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&option)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &option, nil
}

func (r *OptionMongoRepository) FindByQuestionIDs(ctx context.Context, questionIDs []string) ([]models.Option, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(questionIDs))
	for _, id := range questionIDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []models.Option{}, nil
	}

	filter := bson.M{"questionId": bson.M{"$in": objectIDs}, "deletedAt": nil}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	opts := make([]models.Option, 0)
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return opts, nil
}

func (r *OptionMongoRepository) Insert(ctx context.Context, option *models.Option) (string, error) {
	result, err := r.Collection.InsertOne(ctx, option)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OptionMongoRepository) Update(ctx context.Context, option *models.Option) error {
	filter := bson.M{"_id": option.ID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{
		"text":                      option.Text,
		"value":                     option.Value,
		"sequence":                  option.Sequence,
		"conditionalSubQuestionIds": option.ConditionalSubQuestionIDs,
		"updatedAt":                 option.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *OptionMongoRepository) SoftDeleteByID(ctx context.Context, optionID string) error {
	objectID, err := primitive.ObjectIDFromHex(optionID)
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
