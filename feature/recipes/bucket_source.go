package recipes

import (
	"context"
	"fmt"
	"io"
	"strings"

	"worldcraft/core/storage"

	"github.com/minio/minio-go/v7"
)

// BucketSource reads definitions stored under <prefix><category>/<name>.json.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSource creates an object storage source.
func NewBucketSource(client storage.Client, bucket, prefix string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: storage.Prefix(prefix)}
}

func (s *BucketSource) Name() string {
	return "bucket:" + s.bucket + "/" + s.prefix
}

// Documents lists the prefix recursively and downloads every definition.
func (s *BucketSource) Documents(ctx context.Context) ([]Document, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	objects, err := storage.List(ctx, s.client, s.bucket, s.prefix)
	if err != nil {
		return nil, err
	}

	var docs []Document
	for _, obj := range objects {
		cat, name, ok := splitKey(strings.TrimPrefix(obj.Key, s.prefix))
		if !ok {
			continue
		}
		body, err := s.read(ctx, obj.Key)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Category: cat, Name: name, Body: body, Origin: obj.Key})
	}
	return docs, nil
}

func (s *BucketSource) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return body, nil
}
