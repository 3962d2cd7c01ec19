package world

import (
	"maps"
	"slices"

	"worldcraft/core/crafting"
)

// World is a sparse block grid plus a list of pickups.
// It is not safe for concurrent use.
type World struct {
	blocks    map[crafting.BlockPos]crafting.Identity
	pickups   []*Pickup
	destroyed map[crafting.BlockPos]int
	nextID    int
}

// New creates an empty world. Every position starts as air.
func New() *World {
	return &World{
		blocks:    make(map[crafting.BlockPos]crafting.Identity),
		destroyed: make(map[crafting.BlockPos]int),
	}
}

// Material implements crafting.World.
func (w *World) Material(pos crafting.BlockPos) crafting.Identity {
	if id, ok := w.blocks[pos]; ok {
		return id
	}
	return crafting.Air
}

// DestroyBlock implements crafting.World.
func (w *World) DestroyBlock(pos crafting.BlockPos) {
	if _, ok := w.blocks[pos]; !ok {
		return
	}
	delete(w.blocks, pos)
	w.destroyed[pos]++
}

// SetBlock implements crafting.World. Placing air clears the position.
func (w *World) SetBlock(pos crafting.BlockPos, id crafting.Identity) {
	if id.IsEmpty() || id == crafting.Air {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = id
}

// Spawn implements crafting.World.
func (w *World) Spawn(at crafting.Vec3, stack crafting.Stack, velocity crafting.Vec3, pickupDelay int) {
	p := w.AddPickup(at, stack)
	p.Velocity = velocity
	p.PickupDelay = pickupDelay
}

// PickupsIn implements crafting.World.
func (w *World) PickupsIn(box crafting.Box) []crafting.Pickup {
	var out []crafting.Pickup
	for _, p := range w.pickups {
		if p.Alive() && box.Contains(p.Position) {
			out = append(out, p)
		}
	}
	return out
}

// AddPickup drops a stack into the world.
func (w *World) AddPickup(at crafting.Vec3, stack crafting.Stack) *Pickup {
	w.nextID++
	p := &Pickup{ID: w.nextID, Position: at, stack: stack}
	w.pickups = append(w.pickups, p)
	return p
}

// Pickups returns the live pickups in spawn order.
func (w *World) Pickups() []*Pickup {
	out := make([]*Pickup, 0, len(w.pickups))
	for _, p := range w.pickups {
		if p.Alive() {
			out = append(out, p)
		}
	}
	return out
}

// EntitiesIn returns the live pickups inside the box as trigger entities.
func (w *World) EntitiesIn(box crafting.Box) []crafting.Entity {
	var out []crafting.Entity
	for _, p := range w.pickups {
		if p.Alive() && box.Contains(p.Position) {
			out = append(out, p)
		}
	}
	return out
}

// Blocks returns a copy of every non-air block.
func (w *World) Blocks() map[crafting.BlockPos]crafting.Identity {
	return maps.Clone(w.blocks)
}

// Positions returns the non-air positions sorted by Y, Z, X.
func (w *World) Positions() []crafting.BlockPos {
	out := slices.Collect(maps.Keys(w.blocks))
	slices.SortFunc(out, comparePos)
	return out
}

// Destroyed returns how many times the block at pos was destroyed.
func (w *World) Destroyed(pos crafting.BlockPos) int {
	return w.destroyed[pos]
}

func comparePos(a, b crafting.BlockPos) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	if a.Z != b.Z {
		return a.Z - b.Z
	}
	return a.X - b.X
}

// Pickup is a stack lying in the world.
type Pickup struct {
	ID          int
	Position    crafting.Vec3
	Velocity    crafting.Vec3
	PickupDelay int

	stack   crafting.Stack
	removed bool
}

// Stack implements crafting.Pickup.
func (p *Pickup) Stack() crafting.Stack { return p.stack }

// SetCount implements crafting.Pickup.
func (p *Pickup) SetCount(n int) {
	p.stack.Count = n
	if n <= 0 {
		p.removed = true
	}
}

// Discard implements crafting.Pickup.
func (p *Pickup) Discard() { p.removed = true }

// Alive implements crafting.Pickup.
func (p *Pickup) Alive() bool { return !p.removed }

// AsPickup implements crafting.Entity.
func (p *Pickup) AsPickup() (crafting.Pickup, bool) { return p, true }

// Creature is a non-pickup entity. Triggers may catch it but recipes ignore it.
type Creature struct {
	Name string
}

// AsPickup implements crafting.Entity.
func (Creature) AsPickup() (crafting.Pickup, bool) { return nil, false }
