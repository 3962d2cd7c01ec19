package recipes

import (
	"context"
	"testing"

	"worldcraft/core/crafting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuild(t *testing.T) {
	src := &memSource{docs: []Document{
		doc("item_explode", "diamond", `{"input":{"item":"coal","count":8},"output":{"items":[{"item":"diamond"}]}}`),
		doc("block_explode", "glass", `{"input":{"block":"sand"},"output":{"block":"glass"}}`),
		doc("block_explode", "cobble", `{"input":{"block":"stone"},"output":{"block":"cobblestone"}}`),
		doc("block_explode", "broken", `{"input":{"block":"bedrock"}}`),
		doc("volcano", "lava", `{"input":{"block":"stone"}}`),
	}}

	core, logs := observer.New(zap.WarnLevel)
	res, err := Build(context.Background(), src, testResolver(t), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Registry.Len())
	assert.Len(t, res.Warnings(), 2)
	assert.Equal(t, 2, logs.FilterMessage("Dropping recipe definition").Len())

	ids := []string{}
	for _, r := range res.Registry.Recipes(crafting.BlockExplode) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"block_explode/cobble", "block_explode/glass"}, ids)
}

func TestBuild_Duplicates(t *testing.T) {
	src := &memSource{docs: []Document{
		doc("block_explode", "cobble", `{"input":{"block":"stone"},"output":{"block":"cobblestone"}}`),
		doc("block_explode", "cobble", `{"input":{"block":"sand"},"output":{"block":"glass"}}`),
	}}

	res, err := Build(context.Background(), src, testResolver(t), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Registry.Len())
	assert.Equal(t, []string{"block_explode/cobble"}, res.Duplicates)

	first, ok := res.Registry.Lookup(crafting.BlockExplode, "block_explode/cobble")
	require.True(t, ok)
	assert.Equal(t, crafting.Identity("cobblestone"), first.Output.Block)
}

func TestBuild_SourceFailure(t *testing.T) {
	_, err := Build(context.Background(), &memSource{err: errSourceDown}, testResolver(t), zap.NewNop())
	assert.ErrorIs(t, err, errSourceDown)
}
