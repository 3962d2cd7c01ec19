package crafting

import (
	"errors"
	"fmt"
)

// Recipe is an immutable in-world transformation rule.
type Recipe struct {
	// ID is unique within the category by convention; the registry only
	// reports duplicates.
	ID       string   `json:"id"`
	Category Category `json:"category"`

	// Inputs holds exactly one ingredient for block categories and one or
	// more for item categories.
	Inputs []Ingredient `json:"inputs"`

	// Surface optionally constrains the block an anvil lands on. Only used by
	// ItemAnvilSmash.
	Surface *Ingredient `json:"surface,omitempty"`

	Output Output `json:"output"`
}

// Validate checks the structural rules of a recipe.
func (r *Recipe) Validate() error {
	if r.ID == "" {
		return errors.New("recipe id is empty")
	}
	if !r.Category.IsValid() {
		return fmt.Errorf("recipe %q: unknown category %q", r.ID, r.Category)
	}
	if len(r.Inputs) == 0 {
		return fmt.Errorf("recipe %q: no input", r.ID)
	}
	if r.Category.TargetsBlocks() && len(r.Inputs) != 1 {
		return fmt.Errorf("recipe %q: block recipes take exactly one input, got %d", r.ID, len(r.Inputs))
	}
	for i, in := range r.Inputs {
		if in.Kind != IngredientIdentity && in.Kind != IngredientTag {
			return fmt.Errorf("recipe %q: input %d: unknown ingredient kind", r.ID, i)
		}
		if in.Key == "" {
			return fmt.Errorf("recipe %q: input %d: empty key", r.ID, i)
		}
	}
	if r.Surface != nil && r.Category != ItemAnvilSmash {
		return fmt.Errorf("recipe %q: surface is only valid for %s", r.ID, ItemAnvilSmash)
	}

	switch r.Output.Kind {
	case OutputNone:
	case OutputBlock:
		if !r.Category.TargetsBlocks() {
			return fmt.Errorf("recipe %q: %s recipes cannot output a block", r.ID, r.Category)
		}
	case OutputItems:
		for i, s := range r.Output.Items {
			if s.Empty() {
				return fmt.Errorf("recipe %q: output %d: empty stack", r.ID, i)
			}
		}
	default:
		return fmt.Errorf("recipe %q: unknown output kind %d", r.ID, r.Output.Kind)
	}
	return nil
}

// Accepts reports whether any input of the recipe accepts the identity.
func (r *Recipe) Accepts(id Identity) bool {
	for _, in := range r.Inputs {
		if in.Test(id) {
			return true
		}
	}
	return false
}

// CanCraftBlock tests a block recipe against a material. The position of the
// block plays no part in matching.
func (r *Recipe) CanCraftBlock(material Identity) bool {
	if !r.Category.TargetsBlocks() || len(r.Inputs) == 0 {
		return false
	}
	return r.Inputs[0].Test(material)
}

// Match tests an item recipe against candidate pickups. surface is the block
// under the trigger and only matters when the recipe declares a Surface.
func (r *Recipe) Match(candidates []Pickup, surface Identity) (Plan, bool) {
	if r.Category.TargetsBlocks() {
		return nil, false
	}
	if r.Surface != nil && !r.Surface.Test(surface) {
		return nil, false
	}
	return Match(r.Inputs, candidates)
}

// CraftBlock replaces the block at pos with the recipe output.
//
// The block is destroyed without drops, the output is placed or spawned, and
// pos is always spared from the explosion in ctx so the detonation does not
// destroy what was just placed.
func (r *Recipe) CraftBlock(pos BlockPos, ctx *Context) {
	ctx.World.DestroyBlock(pos)

	switch r.Output.Kind {
	case OutputBlock:
		if !r.Output.Block.IsEmpty() {
			ctx.World.SetBlock(pos, r.Output.Block)
		}
	case OutputItems:
		r.Output.spawn(ctx, pos)
	}

	if ctx.Explosion != nil {
		ctx.Explosion.Spare(pos)
	}
}

// CraftItems consumes the claimed pickups and spawns the output at the
// context origin.
func (r *Recipe) CraftItems(plan Plan, ctx *Context) {
	plan.Consume()
	if r.Output.Kind == OutputItems {
		r.Output.spawn(ctx, ctx.Origin)
	}
}
