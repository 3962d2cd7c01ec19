package catalog_test

import (
	"testing"

	"worldcraft/core/catalog"
	"worldcraft/core/crafting"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
materials:
  - stone
  - iron_ore
  - gold_ore
tags:
  ores: [iron_ore, gold_ore]
`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/catalog.yaml", []byte(sample), 0o644))

	c, err := catalog.Load(fs, "/data/catalog.yaml")
	require.NoError(t, err)

	assert.True(t, c.Known("stone"))
	assert.True(t, c.Known(crafting.Air))
	assert.False(t, c.Known("diamond"))
	assert.Equal(t, 4, c.Len())

	members, ok := c.Tag("ores")
	require.True(t, ok)
	assert.Equal(t, []crafting.Identity{"iron_ore", "gold_ore"}, members)

	_, ok = c.Tag("logs")
	assert.False(t, ok)
}

func TestLoad_Missing(t *testing.T) {
	_, err := catalog.Load(afero.NewMemMapFs(), "/nope.yaml")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"UnknownTagMember", "materials: [stone]\ntags:\n  ores: [iron_ore]\n"},
		{"EmptyMaterial", "materials: ['']\n"},
		{"Malformed", "materials: {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestNilCatalog(t *testing.T) {
	var c *catalog.Catalog
	assert.True(t, c.Known("anything"))
	assert.False(t, c.Known(""))
	_, ok := c.Tag("ores")
	assert.False(t, ok)
}
