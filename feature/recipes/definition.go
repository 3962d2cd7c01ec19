package recipes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"worldcraft/core/crafting"
	"worldcraft/core/utils"
)

// Resolver checks identities and expands tag groups while decoding.
// *catalog.Catalog implements it.
type Resolver interface {
	Known(id crafting.Identity) bool
	Tag(name string) ([]crafting.Identity, bool)
}

type stackDef struct {
	Block string `json:"block"`
	Item  string `json:"item"`
	Tag   string `json:"tag"`
	Count any    `json:"count"`
}

type outputDef struct {
	Block string     `json:"block"`
	Items []stackDef `json:"items"`
}

type scatterDef struct {
	JitterMin   *float64 `json:"jitter_min"`
	JitterMax   *float64 `json:"jitter_max"`
	LiftMin     *float64 `json:"lift_min"`
	LiftMax     *float64 `json:"lift_max"`
	SpeedMin    *float64 `json:"speed_min"`
	SpeedMax    *float64 `json:"speed_max"`
	PickupDelay any      `json:"pickup_delay"`
}

type definition struct {
	Input   *stackDef   `json:"input"`
	Inputs  []stackDef  `json:"inputs"`
	Surface *stackDef   `json:"surface"`
	Output  *outputDef  `json:"output"`
	Scatter *scatterDef `json:"scatter"`
}

// Decode turns one JSON definition into a validated recipe with ID
// "<category>/<name>".
func Decode(cat crafting.Category, name string, body []byte, res Resolver) (*crafting.Recipe, error) {
	id := string(cat) + "/" + name

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var def definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("recipe %q: malformed definition: %w", id, err)
	}

	r := &crafting.Recipe{ID: id, Category: cat}

	switch {
	case def.Input != nil && len(def.Inputs) > 0:
		return nil, fmt.Errorf("recipe %q: input and inputs are mutually exclusive", id)
	case def.Input != nil:
		in, err := ingredient(*def.Input, res)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: input: %w", id, err)
		}
		r.Inputs = []crafting.Ingredient{in}
	default:
		for i, s := range def.Inputs {
			in, err := ingredient(s, res)
			if err != nil {
				return nil, fmt.Errorf("recipe %q: input %d: %w", id, i, err)
			}
			r.Inputs = append(r.Inputs, in)
		}
	}

	if def.Surface != nil {
		in, err := ingredient(*def.Surface, res)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: surface: %w", id, err)
		}
		r.Surface = &in
	}

	out, err := output(def.Output, res)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: output: %w", id, err)
	}
	if out.Scatter, err = scatter(def.Scatter); err != nil {
		return nil, fmt.Errorf("recipe %q: scatter: %w", id, err)
	}
	r.Output = out

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func ingredient(s stackDef, res Resolver) (crafting.Ingredient, error) {
	n, err := count(s.Count)
	if err != nil {
		return crafting.Ingredient{}, err
	}

	set := 0
	for _, v := range []string{s.Block, s.Item, s.Tag} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return crafting.Ingredient{}, errors.New("exactly one of block, item or tag is required")
	}

	if s.Tag != "" {
		members, ok := res.Tag(s.Tag)
		if !ok {
			return crafting.Ingredient{}, fmt.Errorf("unknown tag %q", s.Tag)
		}
		return crafting.Tagged(s.Tag, members, n), nil
	}

	id := crafting.Identity(s.Block + s.Item)
	if !res.Known(id) {
		return crafting.Ingredient{}, fmt.Errorf("unknown identity %q", id)
	}
	return crafting.Exact(id, n), nil
}

func output(o *outputDef, res Resolver) (crafting.Output, error) {
	if o == nil || (o.Block == "" && len(o.Items) == 0) {
		return crafting.NoOutput(), nil
	}
	if o.Block != "" && len(o.Items) > 0 {
		return crafting.Output{}, errors.New("block and items are mutually exclusive")
	}

	if o.Block != "" {
		id := crafting.Identity(o.Block)
		if !res.Known(id) {
			return crafting.Output{}, fmt.Errorf("unknown identity %q", id)
		}
		return crafting.BlockOutput(id), nil
	}

	stacks := make([]crafting.Stack, 0, len(o.Items))
	for i, s := range o.Items {
		if s.Item == "" || s.Block != "" || s.Tag != "" {
			return crafting.Output{}, fmt.Errorf("item %d: only item stacks can be spawned", i)
		}
		n, err := count(s.Count)
		if err != nil {
			return crafting.Output{}, fmt.Errorf("item %d: %w", i, err)
		}
		id := crafting.Identity(s.Item)
		if !res.Known(id) {
			return crafting.Output{}, fmt.Errorf("item %d: unknown identity %q", i, id)
		}
		stacks = append(stacks, crafting.Stack{ID: id, Count: n})
	}
	return crafting.ItemsOutput(stacks...), nil
}

func scatter(s *scatterDef) (crafting.Scatter, error) {
	out := crafting.DefaultScatter()
	if s == nil {
		return out, nil
	}
	for dst, src := range map[*float64]*float64{
		&out.JitterMin: s.JitterMin,
		&out.JitterMax: s.JitterMax,
		&out.LiftMin:   s.LiftMin,
		&out.LiftMax:   s.LiftMax,
		&out.SpeedMin:  s.SpeedMin,
		&out.SpeedMax:  s.SpeedMax,
	} {
		if src != nil {
			*dst = *src
		}
	}
	if s.PickupDelay != nil {
		delay, err := utils.ToInt(s.PickupDelay)
		if err != nil {
			return out, fmt.Errorf("pickup_delay: %w", err)
		}
		if delay < 0 {
			return out, fmt.Errorf("pickup_delay must not be negative, got %d", delay)
		}
		out.PickupDelay = delay
	}
	return out, nil
}

// count reads an optional stack count. Missing means one.
func count(v any) (int, error) {
	if v == nil {
		return 1, nil
	}
	n, err := utils.ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("count must be positive, got %d", n)
	}
	return n, nil
}
