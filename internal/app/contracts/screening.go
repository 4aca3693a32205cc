package contracts

import (
	"context"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/responses"
)

type PatientScreeningRepository interface {
	FindByPatientID(ctx context.Context, patientID string) (*models.PatientScreening, error)
	// Upsert writes the whole flag document in one atomic operation keyed by
	// patient id. Last writer wins.
	Upsert(ctx context.Context, screening *models.PatientScreening) error
}

type ScreeningUsecase interface {
	FindScreeningState(ctx context.Context, patientID string) (*responses.ScreeningState, error)
	// ReenableScreening clears the screened flag so an administrator can let
	// the patient retake the primary questionnaire.
	ReenableScreening(ctx context.Context, patientID string) error
}
