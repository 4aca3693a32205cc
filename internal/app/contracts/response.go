package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/requests"
	"screening-service/internal/pkg/dto/responses"
)

type ResponseRepository interface {
	Insert(ctx context.Context, response *models.Response) (string, error)
	FindByID(ctx context.Context, responseID string) (*models.Response, error)
	// FindByPatientAndQuestionnaire returns the patient's responses newest
	// first, paginated.
	FindByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string, page, pageSize int) ([]models.Response, int, error)
	// FindLatestByPatientAndQuestionnaire returns nil when the patient never
	// submitted the questionnaire.
	FindLatestByPatientAndQuestionnaire(ctx context.Context, patientID, questionnaireID string) (*models.Response, error)
}

type ResponseUsecase interface {
	SubmitResponse(ctx context.Context, request *requests.SubmitResponse) (*responses.SubmitResponseResult, error)
	FindResponseByID(ctx context.Context, responseID string) (*responses.ResponseDetail, error)
	ListResponses(ctx context.Context, request *requests.ListResponses) ([]responses.ResponseDetail, int, error)
}
