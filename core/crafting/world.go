package crafting

import "math/rand/v2"

// World is the mutation surface the engine needs from a world simulation.
// Mutations are applied immediately and are visible to later steps of the
// same dispatch.
type World interface {
	// Material returns the block material at pos. Unloaded or empty
	// positions report Air.
	Material(pos BlockPos) Identity
	// DestroyBlock removes the block at pos without producing drops.
	DestroyBlock(pos BlockPos)
	// SetBlock places the default state of a block at pos.
	SetBlock(pos BlockPos, id Identity)
	// Spawn creates a free pickup.
	Spawn(at Vec3, stack Stack, velocity Vec3, pickupDelay int)
	// PickupsIn returns the live pickups inside the box.
	PickupsIn(box Box) []Pickup
}

// Pickup is a free-floating stack lying in the world.
type Pickup interface {
	Stack() Stack
	// SetCount shrinks or grows the stack in place.
	SetCount(n int)
	// Discard removes the pickup from the world.
	Discard()
	Alive() bool
}

// Entity is anything a trigger can catch. Only pickups take part in recipes.
type Entity interface {
	AsPickup() (Pickup, bool)
}

// Explosion is the engine-owned handle of a detonation. The list returned by
// Affected is shared with the engine and changes as recipes spare positions.
type Explosion interface {
	Center() BlockPos
	Affected() []BlockPos
	// Spare removes pos from the list of blocks still to be destroyed.
	Spare(pos BlockPos)
}

// Discharge is the engine-owned handle of a lightning strike.
type Discharge interface {
	Alive() bool
	Discard()
	BlockPos() BlockPos
}

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Context carries what a craft needs to act on the world.
type Context struct {
	World World
	// Origin is where item outputs appear.
	Origin BlockPos
	// Explosion is set for explosion categories only.
	Explosion Explosion
	// Random drives spawn jitter. Nil uses the global generator.
	Random Source
}

func (c *Context) random() Source {
	if c.Random == nil {
		return globalSource{}
	}
	return c.Random
}
