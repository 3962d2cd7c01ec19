package recipes

import (
	"context"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"worldcraft/core/storage"

	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Document is one raw recipe definition and where it came from.
type Document struct {
	Category string
	Name     string
	Body     []byte
	// Origin locates the document for log messages (a path, object key or row).
	Origin string
}

// Source lists raw definitions.
type Source interface {
	Name() string
	Documents(ctx context.Context) ([]Document, error)
}

// splitKey splits "<category>/<name>.json" into its parts. Keys without a
// category directory or a .json suffix are not definitions.
func splitKey(key string) (category, name string, ok bool) {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if !strings.HasSuffix(key, ".json") {
		return "", "", false
	}
	category, rest, found := strings.Cut(key, "/")
	if !found || category == "" || rest == ".json" {
		return "", "", false
	}
	return category, strings.TrimSuffix(rest, ".json"), true
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

// NewSource picks the definition source named by the configuration.
func NewSource(cfg Config, fs afero.Fs, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Source {
	case SourceDir:
		return NewDirSource(fs, cfg.Dir), nil
	case SourceBucket:
		if client == nil {
			return nil, fmt.Errorf("bucket source requires a storage client")
		}
		return NewBucketSource(client, bucket, cfg.Prefix), nil
	case SourceTable:
		if db == nil {
			return nil, fmt.Errorf("table source requires a database connection")
		}
		return NewTableSource(db), nil
	default:
		return nil, fmt.Errorf("unknown recipe source %q", cfg.Source)
	}
}
