package crafting

import "fmt"

// Identity names a kind of block or item, e.g. "stone" or "iron_ingot".
type Identity string

// Air is the empty block material.
const Air Identity = "air"

// IsEmpty reports whether the identity is unset.
func (id Identity) IsEmpty() bool {
	return id == ""
}

// Stack is a quantity of a single identity.
type Stack struct {
	ID    Identity `json:"item"`
	Count int      `json:"count"`
}

// Empty reports whether the stack carries nothing.
func (s Stack) Empty() bool {
	return s.ID.IsEmpty() || s.Count <= 0
}

// Combinable reports whether two stacks hold the same identity.
func (s Stack) Combinable(other Stack) bool {
	return s.ID == other.ID
}

func (s Stack) String() string {
	return fmt.Sprintf("%dx%s", s.Count, s.ID)
}

// BlockPos is an integer block coordinate.
type BlockPos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Offset returns the position shifted by the given deltas.
func (p BlockPos) Offset(dx, dy, dz int) BlockPos {
	return BlockPos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Below returns the position one block down.
func (p BlockPos) Below() BlockPos {
	return p.Offset(0, -1, 0)
}

// Corner returns the minimum corner of the block as a vector.
func (p BlockPos) Corner() Vec3 {
	return Vec3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Center returns the center of the block.
func (p BlockPos) Center() Vec3 {
	return p.Corner().Add(Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Vec3 is a continuous world coordinate or velocity.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Block returns the block containing the point.
func (v Vec3) Block() BlockPos {
	return BlockPos{X: floor(v.X), Y: floor(v.Y), Z: floor(v.Z)}
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

// Box is an axis-aligned volume, Min inclusive and Max exclusive.
type Box struct {
	Min Vec3
	Max Vec3
}

// BlockBox returns the volume spanning from the corner of one block to the
// corner of another.
func BlockBox(from, to BlockPos) Box {
	return Box{Min: from.Corner(), Max: to.Corner()}
}

// Grow returns the box expanded by d on every side.
func (b Box) Grow(d float64) Box {
	return Box{
		Min: Vec3{X: b.Min.X - d, Y: b.Min.Y - d, Z: b.Min.Z - d},
		Max: Vec3{X: b.Max.X + d, Y: b.Max.Y + d, Z: b.Max.Z + d},
	}
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(v Vec3) bool {
	return v.X >= b.Min.X && v.X < b.Max.X &&
		v.Y >= b.Min.Y && v.Y < b.Max.Y &&
		v.Z >= b.Min.Z && v.Z < b.Max.Z
}

// Category is the trigger class a recipe belongs to.
type Category string

const (
	// ItemExplode transforms pickups caught in an explosion.
	ItemExplode Category = "item_explode"
	// BlockExplode transforms blocks an explosion is about to destroy.
	BlockExplode Category = "block_explode"
	// ItemLightning transforms pickups hit by a lightning strike.
	ItemLightning Category = "item_lightning"
	// ItemAnvilSmash transforms pickups an anvil lands on.
	ItemAnvilSmash Category = "item_anvil_smash"
	// BlockAnvilSmash transforms the block an anvil lands on.
	BlockAnvilSmash Category = "block_anvil_smash"
)

// Categories lists every category in a stable order.
var Categories = []Category{ItemExplode, BlockExplode, ItemLightning, ItemAnvilSmash, BlockAnvilSmash}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case ItemExplode, BlockExplode, ItemLightning, ItemAnvilSmash, BlockAnvilSmash:
		return true
	default:
		return false
	}
}

// TargetsBlocks reports whether recipes of the category match a single block
// material rather than a set of pickups.
func (c Category) TargetsBlocks() bool {
	return c == BlockExplode || c == BlockAnvilSmash
}

// ParseCategory converts a name into a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown recipe category %q", name)
	}
	return c, nil
}
