package recipes

import (
	"context"
	"errors"
	"testing"

	"worldcraft/core/catalog"

	"github.com/stretchr/testify/require"
)

const testCatalog = `
materials:
  - stone
  - cobblestone
  - sand
  - glass
  - coal
  - diamond
  - iron_ore
  - gold_ore
  - iron_block
  - iron_ingot
  - iron_plate
tags:
  ores: [iron_ore, gold_ore]
`

func testResolver(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)
	return c
}

// memSource serves fixed documents.
type memSource struct {
	docs []Document
	err  error
}

func (s *memSource) Name() string { return "mem" }

func (s *memSource) Documents(ctx context.Context) ([]Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]Document(nil), s.docs...), nil
}

func doc(category, name, body string) Document {
	return Document{Category: category, Name: name, Body: []byte(body), Origin: category + "/" + name + ".json"}
}

var errSourceDown = errors.New("source down")
