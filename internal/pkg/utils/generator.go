package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateArchiveObjectKey builds the object name under which a raw submission
// payload is stored, partitioned by questionnaire and day.
func GenerateArchiveObjectKey(questionnaireID, responseID string) string {
	day := time.Now().UTC().Format("2006/01/02")
	return fmt.Sprintf("submissions/%s/%s/%s_%s.json", questionnaireID, day, responseID, uuid.New().String()[:8])
}
