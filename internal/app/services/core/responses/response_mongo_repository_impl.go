package responses

import (
	"context"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewResponseMongoRepository(db *mongo.Client, dbName string) contracts.ResponseRepository {
	return &ResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionResponses),
	}
}

func (r *ResponseMongoRepository) Insert(ctx context.Context, response *models.Response) (string, error) {
	result, err := r.Collection.InsertOne(ctx, response)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ResponseMongoRepository) FindByID(ctx context.Context, responseID string) (*models.Response, error) {
	objectID, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var response models.Response
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

func (r *ResponseMongoRepository) FindByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string, page, pageSize int) ([]models.Response, int, error) {
	filter, err := buildPatientQuestionnaireFilter(patientID, questionnaireID)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	results := make([]models.Response, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return results, int(total), nil
}

func (r *ResponseMongoRepository) FindLatestByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string) (*models.Response, error) {
	filter, err := buildPatientQuestionnaireFilter(patientID, questionnaireID)
	if err != nil {
		return nil, err
	}

	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	var response models.Response
	err = r.Collection.FindOne(ctx, filter, findOptions).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

func buildPatientQuestionnaireFilter(patientID, questionnaireID string) (bson.M, error) {
	questionnaireObjectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"questionnaireId": questionnaireObjectID}
	if patientID != "" {
		filter["patientId"] = patientID
	}
	return filter, nil
}
