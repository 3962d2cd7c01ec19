package simulate

import (
	"math/rand/v2"

	"worldcraft/core/crafting"
	"worldcraft/core/dispatch"
	"worldcraft/core/world"

	"go.uber.org/zap"
)

// BlockState is a non-air block after the run.
type BlockState struct {
	At    Point  `yaml:"at" json:"at"`
	Block string `yaml:"block" json:"block"`
}

// PickupState is a live pickup after the run.
type PickupState struct {
	ID          int    `yaml:"id" json:"id"`
	At          Vector `yaml:"at" json:"at"`
	Velocity    Vector `yaml:"velocity" json:"velocity"`
	PickupDelay int    `yaml:"pickup_delay" json:"pickup_delay"`
	Item        string `yaml:"item" json:"item"`
	Count       int    `yaml:"count" json:"count"`
}

// Outcome is the world after the trigger and what crafted.
type Outcome struct {
	Crafted   map[string][]string `yaml:"crafted" json:"crafted"`
	Destroyed []Point             `yaml:"destroyed" json:"destroyed"`
	Blocks    []BlockState        `yaml:"blocks" json:"blocks"`
	Pickups   []PickupState       `yaml:"pickups" json:"pickups"`
}

// Service runs scenarios against the dispatcher's current registry.
type Service struct {
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
}

// NewService creates a new simulate service.
func NewService(dispatcher *dispatch.Dispatcher, logger *zap.Logger) *Service {
	return &Service{dispatcher: dispatcher, logger: logger}
}

// Run builds the scenario world, fires its trigger and returns the result.
// Each run gets its own dispatcher so a seed never leaks into live dispatch.
func (s *Service) Run(sc *Scenario) *Outcome {
	opts := []dispatch.Option{dispatch.WithAnvil(s.dispatcher.Anvil())}
	if sc.Seed != 0 {
		opts = append(opts, dispatch.WithRandom(rand.New(rand.NewPCG(sc.Seed, sc.Seed))))
	}
	d := dispatch.New(s.dispatcher.Registry(), s.logger, opts...)

	w := world.New()
	for _, b := range sc.Blocks {
		w.SetBlock(b.At.pos(), crafting.Identity(b.Block))
	}
	for _, p := range sc.Pickups {
		count := p.Count
		if count == 0 {
			count = 1
		}
		w.AddPickup(p.At.vec(), crafting.Stack{ID: crafting.Identity(p.Item), Count: count})
	}

	var report dispatch.Report
	var destroyed []crafting.BlockPos
	switch t := sc.Trigger; {
	case t.Explosion != nil:
		center := t.Explosion.Center.pos()
		ex := world.Blast(w, center, t.Explosion.Radius)
		report = d.Detonated(w, ex, w.EntitiesIn(world.Reach(center, t.Explosion.Radius)))
		destroyed = ex.Finish(w)
	case t.Lightning != nil:
		pos := t.Lightning.pos()
		report = d.Struck(w, world.NewBolt(pos), w.EntitiesIn(world.StrikeReach(pos)))
	case t.Anvil != nil:
		falling := crafting.Identity(t.Anvil.Falling)
		if falling.IsEmpty() {
			falling = d.Anvil()
		}
		pos := t.Anvil.At.pos()
		report = d.Landed(w, pos, falling)
		w.SetBlock(pos, falling)
	}

	s.logger.Info("Scenario simulated", zap.Int("crafted", report.Total()))
	return outcome(w, report, destroyed)
}

func outcome(w *world.World, report dispatch.Report, destroyed []crafting.BlockPos) *Outcome {
	out := &Outcome{
		Crafted:   make(map[string][]string, len(report.Crafted)),
		Destroyed: []Point{},
		Blocks:    []BlockState{},
		Pickups:   []PickupState{},
	}
	for cat, ids := range report.Crafted {
		out.Crafted[string(cat)] = ids
	}
	for _, pos := range destroyed {
		out.Destroyed = append(out.Destroyed, point(pos))
	}
	for _, pos := range w.Positions() {
		out.Blocks = append(out.Blocks, BlockState{At: point(pos), Block: string(w.Material(pos))})
	}
	for _, p := range w.Pickups() {
		stack := p.Stack()
		out.Pickups = append(out.Pickups, PickupState{
			ID:          p.ID,
			At:          vector(p.Position),
			Velocity:    vector(p.Velocity),
			PickupDelay: p.PickupDelay,
			Item:        string(stack.ID),
			Count:       stack.Count,
		})
	}
	return out
}

func point(p crafting.BlockPos) Point {
	return Point{X: p.X, Y: p.Y, Z: p.Z}
}

func vector(v crafting.Vec3) Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}
