package dutydata

import (
	"context"
	"duty-service/internal/pkg/constvars"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioSource struct {
	MinioClient *minio.Client
	BucketName  string
	Prefix      string
}

// NewMinioSource reads documents from bucketName, under prefix when set.
func NewMinioSource(minioClient *minio.Client, bucketName, prefix string) Source {
	return &minioSource{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Prefix:      prefix,
	}
}

func (s *minioSource) Kind() string {
	return constvars.DutyDataSourceMinio
}

func (s *minioSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	object, err := s.MinioClient.GetObject(ctx, s.BucketName, objectName(s.Prefix, name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing object here instead of on first Read.
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, err
	}
	return object, nil
}

func objectName(prefix, name string) string {
	prefix = strings.Trim(prefix, "/")
	name = strings.TrimLeft(name, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
