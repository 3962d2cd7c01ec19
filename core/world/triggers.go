package world

import (
	"slices"

	"worldcraft/core/crafting"
)

// Explosion is a detonation with a shared list of blocks still to destroy.
type Explosion struct {
	center crafting.BlockPos
	toBlow []crafting.BlockPos
}

// NewExplosion creates an explosion that will destroy the given positions.
func NewExplosion(center crafting.BlockPos, affected ...crafting.BlockPos) *Explosion {
	return &Explosion{center: center, toBlow: slices.Clone(affected)}
}

// Blast creates an explosion affecting every non-air block within radius of
// center, in Y, Z, X order.
func Blast(w *World, center crafting.BlockPos, radius int) *Explosion {
	var affected []crafting.BlockPos
	for _, pos := range w.Positions() {
		if abs(pos.X-center.X) <= radius && abs(pos.Y-center.Y) <= radius && abs(pos.Z-center.Z) <= radius {
			affected = append(affected, pos)
		}
	}
	return NewExplosion(center, affected...)
}

// Reach returns the volume an explosion or strike of the given radius covers.
func Reach(center crafting.BlockPos, radius int) crafting.Box {
	return crafting.BlockBox(center.Offset(-radius, -radius, -radius), center.Offset(radius+1, radius+1, radius+1))
}

// StrikeReach returns the volume a lightning bolt hitting pos affects: three
// blocks around the column, up to six blocks above the strike.
func StrikeReach(pos crafting.BlockPos) crafting.Box {
	return crafting.BlockBox(pos.Offset(-3, -3, -3), pos.Offset(4, 10, 4))
}

// Center implements crafting.Explosion.
func (e *Explosion) Center() crafting.BlockPos { return e.center }

// Affected implements crafting.Explosion.
func (e *Explosion) Affected() []crafting.BlockPos { return e.toBlow }

// Spare implements crafting.Explosion.
func (e *Explosion) Spare(pos crafting.BlockPos) {
	e.toBlow = slices.DeleteFunc(e.toBlow, func(p crafting.BlockPos) bool { return p == pos })
}

// Finish runs the destructive pass over whatever is left in the list and
// returns the destroyed positions.
func (e *Explosion) Finish(w *World) []crafting.BlockPos {
	var out []crafting.BlockPos
	for _, pos := range e.toBlow {
		if w.Material(pos) == crafting.Air {
			continue
		}
		w.DestroyBlock(pos)
		out = append(out, pos)
	}
	return out
}

// Bolt is a lightning strike.
type Bolt struct {
	pos   crafting.BlockPos
	alive bool
}

// NewBolt creates a live bolt striking pos.
func NewBolt(pos crafting.BlockPos) *Bolt {
	return &Bolt{pos: pos, alive: true}
}

// Alive implements crafting.Discharge.
func (b *Bolt) Alive() bool { return b.alive }

// Discard implements crafting.Discharge.
func (b *Bolt) Discard() { b.alive = false }

// BlockPos implements crafting.Discharge.
func (b *Bolt) BlockPos() crafting.BlockPos { return b.pos }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
