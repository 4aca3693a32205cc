package contracts

import "context"

type Storage interface {
	// PutObject stores a small blob under objectName in the configured bucket.
	PutObject(ctx context.Context, objectName string, payload []byte, contentType string) error
}
