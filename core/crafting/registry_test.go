package crafting_test

import (
	"testing"

	"worldcraft/core/crafting"
	"worldcraft/core/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockRecipe(id string, in, out crafting.Identity) *crafting.Recipe {
	return &crafting.Recipe{
		ID:       id,
		Category: crafting.BlockExplode,
		Inputs:   []crafting.Ingredient{crafting.Exact(in, 1)},
		Output:   crafting.BlockOutput(out),
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := crafting.NewRegistry()

	assert.False(t, reg.Register(blockRecipe("a", "stone", "cobblestone")))
	assert.False(t, reg.Register(blockRecipe("b", "dirt", "sand")))
	assert.True(t, reg.Register(blockRecipe("a", "gravel", "sand")))

	assert.Equal(t, 3, reg.Len())
	recipes := reg.Recipes(crafting.BlockExplode)
	require.Len(t, recipes, 3)
	assert.Equal(t, []string{"a", "b", "a"}, []string{recipes[0].ID, recipes[1].ID, recipes[2].ID})

	found, ok := reg.Lookup(crafting.BlockExplode, "a")
	require.True(t, ok)
	assert.Equal(t, crafting.Identity("cobblestone"), found.Output.Block)

	_, ok = reg.Lookup(crafting.ItemExplode, "a")
	assert.False(t, ok)

	counts := reg.Counts()
	assert.Equal(t, 3, counts[crafting.BlockExplode])
	assert.Equal(t, 0, counts[crafting.ItemLightning])
	assert.Len(t, counts, len(crafting.Categories))
}

func TestRegistry_Accepts(t *testing.T) {
	reg := crafting.NewRegistry()
	reg.Register(blockRecipe("a", "stone", "cobblestone"))

	assert.True(t, reg.Accepts(crafting.BlockExplode, "stone"))
	assert.False(t, reg.Accepts(crafting.BlockExplode, "dirt"))
	assert.False(t, reg.Accepts(crafting.ItemExplode, "stone"))
}

func TestRegistry_ApplyFirst(t *testing.T) {
	reg := crafting.NewRegistry()
	reg.Register(blockRecipe("first", "stone", "cobblestone"))
	reg.Register(blockRecipe("second", "stone", "gravel"))
	reg.Register(blockRecipe("other", "dirt", "sand"))

	var checked, crafted []string
	ok := reg.ApplyFirst(crafting.BlockExplode,
		func(r *crafting.Recipe) bool {
			checked = append(checked, r.ID)
			return r.CanCraftBlock("stone")
		},
		func(r *crafting.Recipe) { crafted = append(crafted, r.ID) })

	assert.True(t, ok)
	assert.Equal(t, []string{"first"}, checked)
	assert.Equal(t, []string{"first"}, crafted)

	crafted = nil
	ok = reg.ApplyFirst(crafting.BlockExplode,
		func(r *crafting.Recipe) bool { return r.CanCraftBlock("obsidian") },
		func(r *crafting.Recipe) { crafted = append(crafted, r.ID) })
	assert.False(t, ok)
	assert.Empty(t, crafted)
}

func TestRegistry_ApplyAll(t *testing.T) {
	t.Run("EveryMatchInOrder", func(t *testing.T) {
		reg := crafting.NewRegistry()
		reg.Register(blockRecipe("one", "stone", "a"))
		reg.Register(blockRecipe("two", "dirt", "b"))
		reg.Register(blockRecipe("three", "stone", "c"))

		var crafted []string
		n := reg.ApplyAll(crafting.BlockExplode,
			func(r *crafting.Recipe) bool { return r.CanCraftBlock("stone") },
			func(r *crafting.Recipe) { crafted = append(crafted, r.ID) })

		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"one", "three"}, crafted)
	})

	t.Run("LaterRecipesSeeEarlierConsumption", func(t *testing.T) {
		w := world.New()
		coal := w.AddPickup(crafting.Vec3{}, crafting.Stack{ID: "coal", Count: 5})
		cands := []crafting.Pickup{coal}

		reg := crafting.NewRegistry()
		for _, id := range []string{"take4", "take4again", "take1"} {
			need := 4
			if id == "take1" {
				need = 1
			}
			reg.Register(&crafting.Recipe{
				ID:       id,
				Category: crafting.ItemExplode,
				Inputs:   []crafting.Ingredient{crafting.Exact("coal", need)},
				Output:   crafting.NoOutput(),
			})
		}

		ctx := &crafting.Context{World: w}
		var plan crafting.Plan
		var crafted []string
		reg.ApplyAll(crafting.ItemExplode,
			func(r *crafting.Recipe) bool {
				var ok bool
				plan, ok = r.Match(cands, "")
				return ok
			},
			func(r *crafting.Recipe) {
				r.CraftItems(plan, ctx)
				crafted = append(crafted, r.ID)
			})

		assert.Equal(t, []string{"take4", "take1"}, crafted)
		assert.False(t, coal.Alive())
	})

	t.Run("NoMatchNoMutation", func(t *testing.T) {
		w := world.New()
		pos := crafting.BlockPos{}
		w.SetBlock(pos, "dirt")
		p := w.AddPickup(crafting.Vec3{}, crafting.Stack{ID: "dirt", Count: 1})

		reg := crafting.NewRegistry()
		reg.Register(&crafting.Recipe{ID: "x", Category: crafting.ItemExplode, Inputs: []crafting.Ingredient{crafting.Exact("stone", 1)}, Output: crafting.NoOutput()})

		n := reg.ApplyAll(crafting.ItemExplode,
			func(r *crafting.Recipe) bool {
				_, ok := r.Match([]crafting.Pickup{p}, "")
				return ok
			},
			func(r *crafting.Recipe) { t.Fatalf("unexpected craft of %s", r.ID) })

		assert.Zero(t, n)
		assert.Equal(t, 1, p.Stack().Count)
		assert.Equal(t, crafting.Identity("dirt"), w.Material(pos))
		assert.Len(t, w.Pickups(), 1)
	})
}
