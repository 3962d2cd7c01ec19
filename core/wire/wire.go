package wire

import (
	"bytes"
	"fmt"
	"io"

	"worldcraft/core/crafting"

	"github.com/tinylib/msgp/msgp"
)

// maxPrealloc caps slice capacity taken from an array header; longer arrays
// grow through append as their elements are actually read.
const maxPrealloc = 64

func prealloc(n uint32) int {
	return int(min(n, maxPrealloc))
}

// WriteRecipe appends one recipe to the writer. The caller flushes.
func WriteRecipe(w *msgp.Writer, r *crafting.Recipe) error {
	if err := w.WriteString(r.ID); err != nil {
		return err
	}
	if err := w.WriteString(string(r.Category)); err != nil {
		return err
	}
	if err := writeOutput(w, r.Output); err != nil {
		return fmt.Errorf("write output of %q: %w", r.ID, err)
	}
	if err := w.WriteArrayHeader(uint32(len(r.Inputs))); err != nil {
		return err
	}
	for _, in := range r.Inputs {
		if err := writeIngredient(w, in); err != nil {
			return fmt.Errorf("write input of %q: %w", r.ID, err)
		}
	}
	if err := w.WriteBool(r.Surface != nil); err != nil {
		return err
	}
	if r.Surface != nil {
		if err := writeIngredient(w, *r.Surface); err != nil {
			return fmt.Errorf("write surface of %q: %w", r.ID, err)
		}
	}
	return nil
}

// ReadRecipe reads one recipe written by WriteRecipe.
func ReadRecipe(rd *msgp.Reader) (*crafting.Recipe, error) {
	id, err := rd.ReadString()
	if err != nil {
		return nil, fmt.Errorf("read id: %w", err)
	}
	cat, err := rd.ReadString()
	if err != nil {
		return nil, fmt.Errorf("read category of %q: %w", id, err)
	}
	r := &crafting.Recipe{ID: id, Category: crafting.Category(cat)}

	if r.Output, err = readOutput(rd); err != nil {
		return nil, fmt.Errorf("read output of %q: %w", id, err)
	}

	n, err := rd.ReadArrayHeader()
	if err != nil {
		return nil, fmt.Errorf("read inputs of %q: %w", id, err)
	}
	if n > 0 {
		r.Inputs = make([]crafting.Ingredient, 0, prealloc(n))
	}
	for i := uint32(0); i < n; i++ {
		in, err := readIngredient(rd)
		if err != nil {
			return nil, fmt.Errorf("read input %d of %q: %w", i, id, err)
		}
		r.Inputs = append(r.Inputs, in)
	}

	hasSurface, err := rd.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("read surface flag of %q: %w", id, err)
	}
	if hasSurface {
		surface, err := readIngredient(rd)
		if err != nil {
			return nil, fmt.Errorf("read surface of %q: %w", id, err)
		}
		r.Surface = &surface
	}
	return r, nil
}

// EncodeRecipe returns the wire form of a single recipe.
func EncodeRecipe(r *crafting.Recipe) ([]byte, error) {
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	if err := WriteRecipe(w, r); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecipe parses the wire form of a single recipe.
func DecodeRecipe(data []byte) (*crafting.Recipe, error) {
	return ReadRecipe(msgp.NewReader(bytes.NewReader(data)))
}

// EncodeRegistry writes every recipe of the registry.
func EncodeRegistry(out io.Writer, reg *crafting.Registry) error {
	w := msgp.NewWriter(out)
	if err := w.WriteArrayHeader(uint32(reg.Len())); err != nil {
		return err
	}
	for _, cat := range crafting.Categories {
		for _, r := range reg.Recipes(cat) {
			if err := WriteRecipe(w, r); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// DecodeRegistry rebuilds a registry written by EncodeRegistry.
func DecodeRegistry(in io.Reader) (*crafting.Registry, error) {
	rd := msgp.NewReader(in)
	n, err := rd.ReadArrayHeader()
	if err != nil {
		return nil, fmt.Errorf("read recipe count: %w", err)
	}
	reg := crafting.NewRegistry()
	for i := uint32(0); i < n; i++ {
		r, err := ReadRecipe(rd)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		reg.Register(r)
	}
	return reg, nil
}

func writeOutput(w *msgp.Writer, o crafting.Output) error {
	if err := w.WriteUint8(uint8(o.Kind)); err != nil {
		return err
	}
	if err := w.WriteString(string(o.Block)); err != nil {
		return err
	}
	if err := w.WriteArrayHeader(uint32(len(o.Items))); err != nil {
		return err
	}
	for _, s := range o.Items {
		if err := w.WriteString(string(s.ID)); err != nil {
			return err
		}
		if err := w.WriteInt(s.Count); err != nil {
			return err
		}
	}
	return writeScatter(w, o.Scatter)
}

func readOutput(rd *msgp.Reader) (crafting.Output, error) {
	var o crafting.Output
	kind, err := rd.ReadUint8()
	if err != nil {
		return o, err
	}
	o.Kind = crafting.OutputKind(kind)

	block, err := rd.ReadString()
	if err != nil {
		return o, err
	}
	o.Block = crafting.Identity(block)

	n, err := rd.ReadArrayHeader()
	if err != nil {
		return o, err
	}
	if n > 0 {
		o.Items = make([]crafting.Stack, 0, prealloc(n))
	}
	for i := uint32(0); i < n; i++ {
		id, err := rd.ReadString()
		if err != nil {
			return o, err
		}
		count, err := rd.ReadInt()
		if err != nil {
			return o, err
		}
		o.Items = append(o.Items, crafting.Stack{ID: crafting.Identity(id), Count: count})
	}

	o.Scatter, err = readScatter(rd)
	return o, err
}

func writeScatter(w *msgp.Writer, s crafting.Scatter) error {
	for _, f := range []float64{s.JitterMin, s.JitterMax, s.LiftMin, s.LiftMax, s.SpeedMin, s.SpeedMax} {
		if err := w.WriteFloat64(f); err != nil {
			return err
		}
	}
	return w.WriteInt(s.PickupDelay)
}

func readScatter(rd *msgp.Reader) (crafting.Scatter, error) {
	var s crafting.Scatter
	for _, f := range []*float64{&s.JitterMin, &s.JitterMax, &s.LiftMin, &s.LiftMax, &s.SpeedMin, &s.SpeedMax} {
		v, err := rd.ReadFloat64()
		if err != nil {
			return s, err
		}
		*f = v
	}
	delay, err := rd.ReadInt()
	if err != nil {
		return s, err
	}
	s.PickupDelay = delay
	return s, nil
}

func writeIngredient(w *msgp.Writer, in crafting.Ingredient) error {
	if err := w.WriteUint8(uint8(in.Kind)); err != nil {
		return err
	}
	if err := w.WriteString(in.Key); err != nil {
		return err
	}
	if err := w.WriteArrayHeader(uint32(len(in.Members))); err != nil {
		return err
	}
	for _, m := range in.Members {
		if err := w.WriteString(string(m)); err != nil {
			return err
		}
	}
	return w.WriteInt(in.Count)
}

func readIngredient(rd *msgp.Reader) (crafting.Ingredient, error) {
	var in crafting.Ingredient
	kind, err := rd.ReadUint8()
	if err != nil {
		return in, err
	}
	in.Kind = crafting.IngredientKind(kind)

	if in.Key, err = rd.ReadString(); err != nil {
		return in, err
	}

	n, err := rd.ReadArrayHeader()
	if err != nil {
		return in, err
	}
	if n > 0 {
		in.Members = make([]crafting.Identity, 0, prealloc(n))
	}
	for i := uint32(0); i < n; i++ {
		m, err := rd.ReadString()
		if err != nil {
			return in, err
		}
		in.Members = append(in.Members, crafting.Identity(m))
	}

	in.Count, err = rd.ReadInt()
	return in, err
}
