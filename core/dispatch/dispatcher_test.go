package dispatch_test

import (
	"math/rand/v2"
	"testing"

	"worldcraft/core/crafting"
	"worldcraft/core/dispatch"
	"worldcraft/core/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDispatcher(recipes ...*crafting.Recipe) *dispatch.Dispatcher {
	reg := crafting.NewRegistry()
	for _, r := range recipes {
		reg.Register(r)
	}
	return dispatch.New(reg, zap.NewNop(), dispatch.WithRandom(rand.New(rand.NewPCG(7, 11))))
}

func itemRecipe(cat crafting.Category, id string, in crafting.Stack, out ...crafting.Stack) *crafting.Recipe {
	output := crafting.NoOutput()
	if len(out) > 0 {
		output = crafting.ItemsOutput(out...)
	}
	return &crafting.Recipe{
		ID:       id,
		Category: cat,
		Inputs:   []crafting.Ingredient{crafting.Exact(in.ID, in.Count)},
		Output:   output,
	}
}

func blockRecipe(cat crafting.Category, id string, in, out crafting.Identity) *crafting.Recipe {
	return &crafting.Recipe{
		ID:       id,
		Category: cat,
		Inputs:   []crafting.Ingredient{crafting.Exact(in, 1)},
		Output:   crafting.BlockOutput(out),
	}
}

func TestDetonated_SparesCraftedBlocks(t *testing.T) {
	w := world.New()
	p1 := crafting.BlockPos{X: 0, Y: 64, Z: 0}
	p2 := crafting.BlockPos{X: 1, Y: 64, Z: 0}
	p3 := crafting.BlockPos{X: 2, Y: 64, Z: 0}
	w.SetBlock(p1, "stone")
	w.SetBlock(p2, "sand")
	w.SetBlock(p3, "stone")

	d := newDispatcher(blockRecipe(crafting.BlockExplode, "block_explode/glass", "sand", "glass"))
	ex := world.NewExplosion(p2, p1, p2, p3)

	report := d.Detonated(w, ex, nil)

	assert.Equal(t, []string{"block_explode/glass"}, report.Crafted[crafting.BlockExplode])
	assert.Equal(t, []crafting.BlockPos{p1, p3}, ex.Affected())

	destroyed := ex.Finish(w)
	assert.ElementsMatch(t, []crafting.BlockPos{p1, p3}, destroyed)
	assert.Equal(t, crafting.Identity("glass"), w.Material(p2))
	assert.Equal(t, 1, w.Destroyed(p2))
	assert.Equal(t, crafting.Air, w.Material(p1))
}

func TestDetonated_FirstRecipeWinsPerBlock(t *testing.T) {
	w := world.New()
	pos := crafting.BlockPos{}
	w.SetBlock(pos, "stone")

	d := newDispatcher(
		blockRecipe(crafting.BlockExplode, "first", "stone", "cobblestone"),
		blockRecipe(crafting.BlockExplode, "second", "cobblestone", "gravel"),
	)
	report := d.Detonated(w, world.NewExplosion(pos, pos), nil)

	assert.Equal(t, []string{"first"}, report.Crafted[crafting.BlockExplode])
	assert.Equal(t, crafting.Identity("cobblestone"), w.Material(pos))
}

func TestDetonated_SkipsAirAndUnmatched(t *testing.T) {
	w := world.New()
	air := crafting.BlockPos{X: 5}
	dirt := crafting.BlockPos{X: 6}
	w.SetBlock(dirt, "dirt")

	d := newDispatcher(blockRecipe(crafting.BlockExplode, "r", "stone", "cobblestone"))
	ex := world.NewExplosion(crafting.BlockPos{}, air, dirt)
	report := d.Detonated(w, ex, nil)

	assert.Zero(t, report.Total())
	assert.Equal(t, []crafting.BlockPos{air, dirt}, ex.Affected())
	assert.Equal(t, crafting.Identity("dirt"), w.Material(dirt))
}

func TestDetonated_Items(t *testing.T) {
	w := world.New()
	center := crafting.BlockPos{X: 10, Y: 70, Z: 10}
	coal := w.AddPickup(center.Center(), crafting.Stack{ID: "coal", Count: 8})
	feather := w.AddPickup(center.Center(), crafting.Stack{ID: "feather", Count: 1})

	d := newDispatcher(itemRecipe(crafting.ItemExplode, "item_explode/diamond",
		crafting.Stack{ID: "coal", Count: 8}, crafting.Stack{ID: "diamond", Count: 1}))

	entities := []crafting.Entity{world.Creature{Name: "creeper"}, coal, feather}
	report := d.Detonated(w, world.NewExplosion(center), entities)

	assert.Equal(t, []string{"item_explode/diamond"}, report.Crafted[crafting.ItemExplode])
	assert.False(t, coal.Alive())
	assert.True(t, feather.Alive())

	live := w.Pickups()
	require.Len(t, live, 2)
	assert.Equal(t, crafting.Identity("diamond"), live[1].Stack().ID)
	assert.Equal(t, center, live[1].Position.Block())
}

func TestDetonated_IndependentItemGroups(t *testing.T) {
	w := world.New()
	at := crafting.Vec3{}
	coal := w.AddPickup(at, crafting.Stack{ID: "coal", Count: 1})
	sand := w.AddPickup(at, crafting.Stack{ID: "sand", Count: 1})

	d := newDispatcher(
		itemRecipe(crafting.ItemExplode, "a", crafting.Stack{ID: "coal", Count: 1}, crafting.Stack{ID: "gunpowder", Count: 1}),
		itemRecipe(crafting.ItemExplode, "b", crafting.Stack{ID: "sand", Count: 1}, crafting.Stack{ID: "glass_shard", Count: 2}),
	)
	report := d.Detonated(w, world.NewExplosion(crafting.BlockPos{}), []crafting.Entity{coal, sand})

	assert.Equal(t, []string{"a", "b"}, report.Crafted[crafting.ItemExplode])
	assert.False(t, coal.Alive())
	assert.False(t, sand.Alive())
}

func TestStruck_EndToEnd(t *testing.T) {
	w := world.New()
	strike := crafting.BlockPos{X: -3, Y: 65, Z: 8}
	rod := w.AddPickup(strike.Center(), crafting.Stack{ID: "copper_rod", Count: 1})
	bolt := world.NewBolt(strike)

	d := newDispatcher(itemRecipe(crafting.ItemLightning, "item_lightning/charged",
		crafting.Stack{ID: "copper_rod", Count: 1}, crafting.Stack{ID: "charged_rod", Count: 1}))

	report := d.Struck(w, bolt, w.EntitiesIn(world.Reach(strike, 3)))

	assert.Equal(t, 1, report.Total())
	assert.False(t, rod.Alive())
	assert.False(t, bolt.Alive())

	out := w.PickupsIn(world.Reach(strike, 1))
	require.Len(t, out, 1)
	assert.Equal(t, crafting.Stack{ID: "charged_rod", Count: 1}, out[0].Stack())
}

func TestStruck_DischargeConsumedWithoutMatch(t *testing.T) {
	w := world.New()
	bolt := world.NewBolt(crafting.BlockPos{})
	d := newDispatcher()

	report := d.Struck(w, bolt, nil)
	assert.Zero(t, report.Total())
	assert.False(t, bolt.Alive())
}

func TestStruck_DeadDischargeIgnored(t *testing.T) {
	w := world.New()
	rod := w.AddPickup(crafting.Vec3{}, crafting.Stack{ID: "copper_rod", Count: 1})
	bolt := world.NewBolt(crafting.BlockPos{})
	bolt.Discard()

	d := newDispatcher(itemRecipe(crafting.ItemLightning, "r", crafting.Stack{ID: "copper_rod", Count: 1}))
	report := d.Struck(w, bolt, []crafting.Entity{rod})

	assert.Zero(t, report.Total())
	assert.True(t, rod.Alive())
}

func TestLanded(t *testing.T) {
	pos := crafting.BlockPos{X: 2, Y: 11, Z: 2}

	setup := func() (*world.World, *world.Pickup, *world.Pickup) {
		w := world.New()
		w.SetBlock(pos.Below(), "cobblestone")
		inside := w.AddPickup(pos.Center(), crafting.Stack{ID: "iron_ingot", Count: 2})
		outside := w.AddPickup(pos.Offset(3, 0, 0).Center(), crafting.Stack{ID: "iron_ingot", Count: 2})
		return w, inside, outside
	}

	t.Run("NotAnAnvil", func(t *testing.T) {
		w, inside, _ := setup()
		d := newDispatcher(itemRecipe(crafting.ItemAnvilSmash, "r", crafting.Stack{ID: "iron_ingot", Count: 1}))

		report := d.Landed(w, pos, "sand")
		assert.Zero(t, report.Total())
		assert.Equal(t, 2, inside.Stack().Count)
	})

	t.Run("SmashesItemsAndBlockBelow", func(t *testing.T) {
		w, inside, outside := setup()
		d := newDispatcher(
			itemRecipe(crafting.ItemAnvilSmash, "item_anvil_smash/plate",
				crafting.Stack{ID: "iron_ingot", Count: 1}, crafting.Stack{ID: "iron_plate", Count: 1}),
			blockRecipe(crafting.BlockAnvilSmash, "block_anvil_smash/gravel", "cobblestone", "gravel"),
		)

		report := d.Landed(w, pos, dispatch.DefaultAnvil)

		assert.Equal(t, []string{"item_anvil_smash/plate"}, report.Crafted[crafting.ItemAnvilSmash])
		assert.Equal(t, []string{"block_anvil_smash/gravel"}, report.Crafted[crafting.BlockAnvilSmash])
		assert.Equal(t, 1, inside.Stack().Count)
		assert.Equal(t, 2, outside.Stack().Count)
		assert.Equal(t, crafting.Identity("gravel"), w.Material(pos.Below()))
	})

	t.Run("SurfaceConstraint", func(t *testing.T) {
		w, inside, _ := setup()
		surface := crafting.Exact("iron_block", 1)
		r := itemRecipe(crafting.ItemAnvilSmash, "r", crafting.Stack{ID: "iron_ingot", Count: 1})
		r.Surface = &surface
		d := newDispatcher(r)

		report := d.Landed(w, pos, dispatch.DefaultAnvil)
		assert.Zero(t, report.Total())
		assert.Equal(t, 2, inside.Stack().Count)
	})

	t.Run("CustomAnvil", func(t *testing.T) {
		w, inside, _ := setup()
		reg := crafting.NewRegistry()
		reg.Register(itemRecipe(crafting.ItemAnvilSmash, "r", crafting.Stack{ID: "iron_ingot", Count: 2}))
		d := dispatch.New(reg, zap.NewNop(), dispatch.WithAnvil("chipped_anvil"))

		assert.Zero(t, d.Landed(w, pos, dispatch.DefaultAnvil).Total())
		assert.Equal(t, 1, d.Landed(w, pos, "chipped_anvil").Total())
		assert.False(t, inside.Alive())
	})
}

func TestDispatcher_Swap(t *testing.T) {
	w := world.New()
	pos := crafting.BlockPos{}
	w.SetBlock(pos, "stone")

	d := newDispatcher()
	assert.Zero(t, d.Detonated(w, world.NewExplosion(pos, pos), nil).Total())

	next := crafting.NewRegistry()
	next.Register(blockRecipe(crafting.BlockExplode, "r", "stone", "cobblestone"))
	prev := d.Swap(next)

	assert.Zero(t, prev.Len())
	assert.Same(t, next, d.Registry())
	assert.Equal(t, 1, d.Detonated(w, world.NewExplosion(pos, pos), nil).Total())
}

func TestDispatcher_Hooks(t *testing.T) {
	w := world.New()
	strike := crafting.BlockPos{}
	rod := w.AddPickup(strike.Center(), crafting.Stack{ID: "copper_rod", Count: 1})
	bolt := world.NewBolt(strike)

	d := newDispatcher(itemRecipe(crafting.ItemLightning, "r", crafting.Stack{ID: "copper_rod", Count: 1}))
	hooks := d.Hooks()
	hooks.OnStrike(w, bolt, []crafting.Entity{rod})

	assert.False(t, rod.Alive())
	assert.False(t, bolt.Alive())
	assert.NotNil(t, hooks.OnDetonate)
	assert.NotNil(t, hooks.OnLand)
}
