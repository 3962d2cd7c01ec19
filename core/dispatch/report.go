package dispatch

import "worldcraft/core/crafting"

// Report lists the recipes crafted by one dispatch, per category, in the
// order they ran.
type Report struct {
	Crafted map[crafting.Category][]string `json:"crafted"`
}

func newReport() Report {
	return Report{Crafted: make(map[crafting.Category][]string)}
}

func (r *Report) add(cat crafting.Category, id string) {
	r.Crafted[cat] = append(r.Crafted[cat], id)
}

// Total returns the number of crafts across all categories.
func (r Report) Total() int {
	n := 0
	for _, ids := range r.Crafted {
		n += len(ids)
	}
	return n
}

// Hooks exposes the three trigger entry points as plain functions for the
// world engine to register.
type Hooks struct {
	OnDetonate func(w crafting.World, ex crafting.Explosion, entities []crafting.Entity)
	OnStrike   func(w crafting.World, bolt crafting.Discharge, entities []crafting.Entity)
	OnLand     func(w crafting.World, pos crafting.BlockPos, falling crafting.Identity)
}

// Hooks returns the dispatcher's entry points without their reports.
func (d *Dispatcher) Hooks() Hooks {
	return Hooks{
		OnDetonate: func(w crafting.World, ex crafting.Explosion, entities []crafting.Entity) {
			d.Detonated(w, ex, entities)
		},
		OnStrike: func(w crafting.World, bolt crafting.Discharge, entities []crafting.Entity) {
			d.Struck(w, bolt, entities)
		},
		OnLand: func(w crafting.World, pos crafting.BlockPos, falling crafting.Identity) {
			d.Landed(w, pos, falling)
		},
	}
}
