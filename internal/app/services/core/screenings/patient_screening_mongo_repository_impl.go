package screenings

import (
	"context"
	"screening-service/internal/app/contracts"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientScreeningMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientScreeningMongoRepository(db *mongo.Client, dbName string) contracts.PatientScreeningRepository {
	return &PatientScreeningMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientScreenings),
	}
}

func (r *PatientScreeningMongoRepository) FindByPatientID(ctx context.Context, patientID string) (*models.PatientScreening, error) {
	var screening models.PatientScreening
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}).Decode(&screening)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &screening, nil
}

func (r *PatientScreeningMongoRepository) Upsert(ctx context.Context, screening *models.PatientScreening) error {
	filter := bson.M{"patientId": screening.PatientID}
	update := bson.M{"$set": bson.M{
		"patientId":        screening.PatientID,
		"screened":         screening.Screened,
		"latestResponseId": screening.LatestResponseID,
		"latestTotalScore": screening.LatestTotalScore,
		"followUpEligible": screening.FollowUpEligible,
		"updatedAt":        screening.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
