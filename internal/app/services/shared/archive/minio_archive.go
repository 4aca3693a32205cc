package archive

import (
	"bytes"
	"context"
	"screening-service/internal/app/config"
	"screening-service/internal/app/contracts"
	"screening-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioArchive struct {
	minioClient *minio.Client
	bucketName  string
}

func NewMinioArchive(minioClient *minio.Client, internalConfig *config.InternalConfig) contracts.Storage {
	return &minioArchive{
		minioClient: minioClient,
		bucketName:  internalConfig.Minio.BucketName,
	}
}

func (m *minioArchive) PutObject(ctx context.Context, objectName string, payload []byte, contentType string) error {
	_, err := m.minioClient.PutObject(
		ctx,
		m.bucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.bucketName)
	}

	return nil
}
