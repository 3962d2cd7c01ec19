package dispatch

import (
	"slices"
	"sync/atomic"

	"worldcraft/core/crafting"

	"go.uber.org/zap"
)

// DefaultAnvil is the falling material that triggers smash recipes.
const DefaultAnvil crafting.Identity = "anvil"

// Dispatcher runs recipes in reaction to world triggers.
type Dispatcher struct {
	registry atomic.Pointer[crafting.Registry]
	anvil    crafting.Identity
	random   crafting.Source
	logger   *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAnvil sets the falling material that triggers smash recipes.
func WithAnvil(id crafting.Identity) Option {
	return func(d *Dispatcher) {
		if !id.IsEmpty() {
			d.anvil = id
		}
	}
}

// WithRandom sets the source used for spawn jitter.
func WithRandom(src crafting.Source) Option {
	return func(d *Dispatcher) { d.random = src }
}

// New creates a dispatcher over the given registry.
func New(reg *crafting.Registry, logger *zap.Logger, opts ...Option) *Dispatcher {
	if reg == nil {
		reg = crafting.NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{anvil: DefaultAnvil, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	d.registry.Store(reg)
	return d
}

// Registry returns the registry currently in use.
func (d *Dispatcher) Registry() *crafting.Registry {
	return d.registry.Load()
}

// Swap publishes a new registry and returns the previous one.
func (d *Dispatcher) Swap(reg *crafting.Registry) *crafting.Registry {
	return d.registry.Swap(reg)
}

// Anvil returns the falling material that triggers smash recipes.
func (d *Dispatcher) Anvil() crafting.Identity {
	return d.anvil
}

// Detonated reacts to an explosion that has computed its affected blocks and
// caught entities but not yet destroyed anything.
func (d *Dispatcher) Detonated(w crafting.World, ex crafting.Explosion, entities []crafting.Entity) Report {
	reg := d.registry.Load()
	report := newReport()
	ctx := &crafting.Context{World: w, Origin: ex.Center(), Explosion: ex, Random: d.random}

	items := extract(reg, crafting.ItemExplode, entities)
	d.applyItems(reg, crafting.ItemExplode, items, crafting.Air, ctx, &report)

	// Block crafts remove positions from the live list, so walk a copy.
	for _, pos := range slices.Clone(ex.Affected()) {
		if !slices.Contains(ex.Affected(), pos) {
			continue
		}
		material := w.Material(pos)
		if material == crafting.Air || material.IsEmpty() {
			continue
		}
		d.applyBlock(reg, crafting.BlockExplode, pos, material, ctx, &report)
	}

	d.log("explosion", ex.Center(), report)
	return report
}

// Struck reacts to a lightning strike about to hit the given entities. The
// discharge is always consumed, whether or not a recipe crafted.
func (d *Dispatcher) Struck(w crafting.World, bolt crafting.Discharge, entities []crafting.Entity) Report {
	report := newReport()
	if !bolt.Alive() {
		return report
	}
	reg := d.registry.Load()
	ctx := &crafting.Context{World: w, Origin: bolt.BlockPos(), Random: d.random}

	items := extract(reg, crafting.ItemLightning, entities)
	d.applyItems(reg, crafting.ItemLightning, items, crafting.Air, ctx, &report)

	bolt.Discard()
	d.log("lightning", bolt.BlockPos(), report)
	return report
}

// Landed reacts to a falling block coming to rest at pos. Only the anvil
// material triggers recipes.
func (d *Dispatcher) Landed(w crafting.World, pos crafting.BlockPos, falling crafting.Identity) Report {
	report := newReport()
	if falling != d.anvil {
		return report
	}
	reg := d.registry.Load()

	items := w.PickupsIn(crafting.BlockBox(pos, pos.Offset(1, 1, 1)))
	hitPos := pos.Below()
	hit := w.Material(hitPos)

	itemCtx := &crafting.Context{World: w, Origin: pos, Random: d.random}
	d.applyItems(reg, crafting.ItemAnvilSmash, items, hit, itemCtx, &report)

	blockCtx := &crafting.Context{World: w, Origin: hitPos, Random: d.random}
	d.applyBlock(reg, crafting.BlockAnvilSmash, hitPos, hit, blockCtx, &report)

	d.log("anvil", pos, report)
	return report
}

func (d *Dispatcher) applyItems(reg *crafting.Registry, cat crafting.Category, items []crafting.Pickup, surface crafting.Identity, ctx *crafting.Context, report *Report) {
	if len(items) == 0 {
		return
	}
	var plan crafting.Plan
	reg.ApplyAll(cat,
		func(r *crafting.Recipe) bool {
			var ok bool
			plan, ok = r.Match(items, surface)
			return ok
		},
		func(r *crafting.Recipe) {
			r.CraftItems(plan, ctx)
			report.add(cat, r.ID)
		})
}

func (d *Dispatcher) applyBlock(reg *crafting.Registry, cat crafting.Category, pos crafting.BlockPos, material crafting.Identity, ctx *crafting.Context, report *Report) {
	reg.ApplyFirst(cat,
		func(r *crafting.Recipe) bool { return r.CanCraftBlock(material) },
		func(r *crafting.Recipe) {
			r.CraftBlock(pos, ctx)
			report.add(cat, r.ID)
		})
}

// extract keeps the live pickups some recipe of the category could use.
func extract(reg *crafting.Registry, cat crafting.Category, entities []crafting.Entity) []crafting.Pickup {
	var out []crafting.Pickup
	for _, e := range entities {
		p, ok := e.AsPickup()
		if !ok || !p.Alive() {
			continue
		}
		if reg.Accepts(cat, p.Stack().ID) {
			out = append(out, p)
		}
	}
	return out
}

func (d *Dispatcher) log(trigger string, at crafting.BlockPos, report Report) {
	if report.Total() == 0 {
		return
	}
	d.logger.Debug("In-world recipes crafted",
		zap.String("trigger", trigger),
		zap.Stringer("pos", at),
		zap.Int("crafted", report.Total()),
	)
}
