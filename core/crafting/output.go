package crafting

// OutputKind discriminates the Output union.
type OutputKind uint8

const (
	// OutputNone consumes the inputs and produces nothing.
	OutputNone OutputKind = iota
	// OutputBlock places a block.
	OutputBlock
	// OutputItems spawns one or more pickups.
	OutputItems
)

func (k OutputKind) String() string {
	switch k {
	case OutputNone:
		return "none"
	case OutputBlock:
		return "block"
	case OutputItems:
		return "items"
	default:
		return "unknown"
	}
}

// Scatter controls where spawned pickups appear and how they move.
// Offsets are relative to the block corner the craft happens at.
type Scatter struct {
	JitterMin   float64 `json:"jitter_min"`
	JitterMax   float64 `json:"jitter_max"`
	LiftMin     float64 `json:"lift_min"`
	LiftMax     float64 `json:"lift_max"`
	SpeedMin    float64 `json:"speed_min"`
	SpeedMax    float64 `json:"speed_max"`
	PickupDelay int     `json:"pickup_delay"`
}

// DefaultScatter drops items near the middle of the block with a small hop
// and a one second pickup delay.
func DefaultScatter() Scatter {
	return Scatter{
		JitterMin:   0.25,
		JitterMax:   0.75,
		LiftMin:     0.5,
		LiftMax:     1.0,
		SpeedMin:    0.1,
		SpeedMax:    0.25,
		PickupDelay: 20,
	}
}

// sample draws one spawn offset and one upward velocity.
func (s Scatter) sample(rnd Source) (Vec3, Vec3) {
	offset := Vec3{
		X: between(rnd, s.JitterMin, s.JitterMax),
		Y: between(rnd, s.LiftMin, s.LiftMax),
		Z: between(rnd, s.JitterMin, s.JitterMax),
	}
	velocity := Vec3{Y: between(rnd, s.SpeedMin, s.SpeedMax)}
	return offset, velocity
}

func between(rnd Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rnd.Float64()*(hi-lo)
}

// Output describes what a recipe produces. Exactly one of Block and Items is
// meaningful, selected by Kind.
type Output struct {
	Kind    OutputKind `json:"kind"`
	Block   Identity   `json:"block,omitempty"`
	Items   []Stack    `json:"items,omitempty"`
	Scatter Scatter    `json:"scatter"`
}

// NoOutput returns the consume-only output.
func NoOutput() Output {
	return Output{Kind: OutputNone, Scatter: DefaultScatter()}
}

// BlockOutput returns an output placing the given block.
func BlockOutput(id Identity) Output {
	return Output{Kind: OutputBlock, Block: id, Scatter: DefaultScatter()}
}

// ItemsOutput returns an output spawning the given stacks.
func ItemsOutput(stacks ...Stack) Output {
	return Output{Kind: OutputItems, Items: stacks, Scatter: DefaultScatter()}
}

// spawn drops the output stacks at the block, sharing one jitter sample.
func (o Output) spawn(ctx *Context, pos BlockPos) {
	if len(o.Items) == 0 {
		return
	}
	offset, velocity := o.Scatter.sample(ctx.random())
	at := pos.Corner().Add(offset)
	for _, stack := range o.Items {
		if stack.Empty() {
			continue
		}
		ctx.World.Spawn(at, stack, velocity, o.Scatter.PickupDelay)
	}
}
