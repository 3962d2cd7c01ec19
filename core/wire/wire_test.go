package wire_test

import (
	"bytes"
	"math"
	"testing"

	"worldcraft/core/crafting"
	"worldcraft/core/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func sampleRecipes() []*crafting.Recipe {
	surface := crafting.Exact("iron_block", 1)
	scatter := crafting.DefaultScatter()
	scatter.PickupDelay = 40
	scatter.SpeedMax = 0.5

	return []*crafting.Recipe{
		{
			ID:       "block_explode/glass",
			Category: crafting.BlockExplode,
			Inputs:   []crafting.Ingredient{crafting.Exact("sand", 1)},
			Output:   crafting.BlockOutput("glass"),
		},
		{
			ID:       "item_explode/diamond",
			Category: crafting.ItemExplode,
			Inputs: []crafting.Ingredient{
				crafting.Exact("coal", 8),
				crafting.Tagged("ores", []crafting.Identity{"iron_ore", "gold_ore"}, 2),
			},
			Output: crafting.Output{
				Kind:    crafting.OutputItems,
				Items:   []crafting.Stack{{ID: "diamond", Count: 1}, {ID: "ash", Count: 3}},
				Scatter: scatter,
			},
		},
		{
			ID:       "item_anvil_smash/plate",
			Category: crafting.ItemAnvilSmash,
			Inputs:   []crafting.Ingredient{crafting.Exact("iron_ingot", 1)},
			Surface:  &surface,
			Output:   crafting.ItemsOutput(crafting.Stack{ID: "iron_plate", Count: 1}),
		},
		{
			ID:       "item_lightning/void",
			Category: crafting.ItemLightning,
			Inputs:   []crafting.Ingredient{crafting.Exact("paper", 1)},
			Output:   crafting.NoOutput(),
		},
	}
}

func TestRecipe_RoundTrip(t *testing.T) {
	for _, r := range sampleRecipes() {
		t.Run(r.ID, func(t *testing.T) {
			data, err := wire.EncodeRecipe(r)
			require.NoError(t, err)

			got, err := wire.DecodeRecipe(data)
			require.NoError(t, err)
			assert.Equal(t, r, got)

			again, err := wire.EncodeRecipe(got)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestRecipe_Truncated(t *testing.T) {
	data, err := wire.EncodeRecipe(sampleRecipes()[1])
	require.NoError(t, err)

	_, err = wire.DecodeRecipe(data[:len(data)/2])
	assert.Error(t, err)
}

func TestRecipe_OversizedArrayHeader(t *testing.T) {
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, w.WriteString("item_explode/x"))
	require.NoError(t, w.WriteString(string(crafting.ItemExplode)))
	require.NoError(t, w.WriteUint8(uint8(crafting.OutputItems)))
	require.NoError(t, w.WriteString(""))
	require.NoError(t, w.WriteArrayHeader(math.MaxUint32))
	require.NoError(t, w.WriteString("diamond"))
	require.NoError(t, w.Flush())

	_, err := wire.DecodeRecipe(buf.Bytes())
	assert.Error(t, err)
}

func TestRegistry_RoundTrip(t *testing.T) {
	reg := crafting.NewRegistry()
	for _, r := range sampleRecipes() {
		reg.Register(r)
	}
	reg.Register(&crafting.Recipe{
		ID:       "block_explode/gravel",
		Category: crafting.BlockExplode,
		Inputs:   []crafting.Ingredient{crafting.Exact("cobblestone", 1)},
		Output:   crafting.BlockOutput("gravel"),
	})

	var buf bytes.Buffer
	require.NoError(t, wire.EncodeRegistry(&buf, reg))

	got, err := wire.DecodeRegistry(&buf)
	require.NoError(t, err)
	assert.Equal(t, reg.Len(), got.Len())
	for _, cat := range crafting.Categories {
		assert.Equal(t, reg.Recipes(cat), got.Recipes(cat), "category %s", cat)
	}
}

func TestRegistry_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.EncodeRegistry(&buf, crafting.NewRegistry()))

	got, err := wire.DecodeRegistry(&buf)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}
