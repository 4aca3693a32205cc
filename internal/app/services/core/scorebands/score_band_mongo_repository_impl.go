package scorebands

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

type ScoreBandMongoRepository struct {
	Collection *mongo.Collection
}

func NewScoreBandMongoRepository(db *mongo.Client, dbName string) contracts.ScoreBandRepository {
	return &ScoreBandMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionScoreBands),
	}
}

func (r *ScoreBandMongoRepository) FindByQuestionnaireID(ctx context.Context, questionnaireID string) ([]models.ScoreBand, error) {
	questionnaireObjectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"questionnaireId": questionnaireObjectID, "deletedAt": nil}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "minScore", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bands := make([]models.ScoreBand, 0)
	if err := cursor.All(ctx, &bands); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bands, nil
}

func (r *ScoreBandMongoRepository) FindByID(ctx context.Context, scoreBandID string) (*models.ScoreBand, error) {
	objectID, err := primitive.ObjectIDFromHex(scoreBandID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var band models.ScoreBand
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&band)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &band, nil
}

func (r *ScoreBandMongoRepository) Insert(ctx context.Context, band *models.ScoreBand) (string, error) {
	result, err := r.Collection.InsertOne(ctx, band)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ScoreBandMongoRepository) Update(ctx context.Context, band *models.ScoreBand) error {
	filter := bson.M{"_id": band.ID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{
		"minScore":       band.MinScore,
		"maxScore":       band.MaxScore,
		"interpretation": band.Interpretation,
		"recommendation": band.Recommendation,
		"updatedAt":      band.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ScoreBandMongoRepository) SoftDeleteByID(ctx context.Context, scoreBandID string) error {
	objectID, err := primitive.ObjectIDFromHex(scoreBandID)
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
