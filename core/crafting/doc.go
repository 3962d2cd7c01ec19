// Package crafting implements the in-world recipe engine.
//
// An in-world recipe turns objects caught by a physical trigger (an explosion,
// a lightning strike, an anvil landing) into something else. The package owns
// the recipe data model, the per-category registry, the ingredient matching
// pass, and the craft step that mutates the world.
//
// # Categories
//
// Every recipe belongs to exactly one Category. Block categories
// (BlockExplode, BlockAnvilSmash) test a single block material; item
// categories (ItemExplode, ItemLightning, ItemAnvilSmash) test a set of
// pickups lying in the world.
//
// # Registry
//
// The Registry holds the recipes of each category in registration order and
// offers two scan policies:
//
//   - ApplyFirst: the first recipe whose predicate holds crafts, the scan stops.
//   - ApplyAll: every recipe whose predicate holds crafts once, in order. The
//     predicate is evaluated lazily, so a recipe sees what earlier crafts in
//     the same scan consumed.
//
// A Registry is built once and never mutated after it is published. Reloads
// build a new one.
//
// # World Boundary
//
// Recipes never touch an engine directly. They receive a Context whose World
// exposes the narrow mutation surface (destroy, place, spawn, query), and an
// optional Explosion whose "to destroy" list is shared with the engine.
//
// # Usage
//
//	reg := crafting.NewRegistry()
//	reg.Register(&crafting.Recipe{
//	    ID:       "block_explode/stone",
//	    Category: crafting.BlockExplode,
//	    Inputs:   []crafting.Ingredient{crafting.Exact("stone", 1)},
//	    Output:   crafting.BlockOutput("cobblestone"),
//	})
//
//	reg.ApplyFirst(crafting.BlockExplode,
//	    func(r *crafting.Recipe) bool { return r.CanCraftBlock(material) },
//	    func(r *crafting.Recipe) { r.CraftBlock(pos, ctx) })
package crafting
