package recipes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// DirSource reads definitions from <root>/<category>/<name>.json.
type DirSource struct {
	fs   afero.Fs
	root string
}

// NewDirSource creates a directory source. Pass afero.NewOsFs() for disk.
func NewDirSource(fs afero.Fs, root string) *DirSource {
	return &DirSource{fs: fs, root: root}
}

func (s *DirSource) Name() string {
	return "dir:" + s.root
}

// Documents walks the root in lexical order.
func (s *DirSource) Documents(ctx context.Context) ([]Document, error) {
	var docs []Document
	err := afero.Walk(s.fs, s.root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		cat, name, ok := splitKey(filepath.ToSlash(rel))
		if !ok {
			return nil
		}
		body, err := afero.ReadFile(s.fs, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		docs = append(docs, Document{Category: cat, Name: name, Body: body, Origin: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}
	return docs, nil
}
