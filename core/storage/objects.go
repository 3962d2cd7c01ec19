package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Prefix returns p with exactly one trailing slash so keys below it split
// cleanly into <category>/<name>.json. An empty prefix stays empty.
func Prefix(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// ObjectKey returns the key of a definition document under prefix.
func ObjectKey(prefix, category, name string) string {
	return Prefix(prefix) + category + "/" + name + ".json"
}

// List drains a recursive listing of bucket below prefix.
//
// The listing runs under its own context, cancelled on return, so the
// producer goroutine stops when an error entry ends the walk early.
func List(ctx context.Context, c Client, bucket, prefix string) ([]minio.ObjectInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var out []minio.ObjectInfo
	for obj := range c.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s/%s: %w", bucket, prefix, obj.Err)
		}
		out = append(out, obj)
	}
	return out, nil
}
