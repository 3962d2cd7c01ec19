package crafting

import "slices"

// Registry holds the recipes of every category in registration order.
//
// It is filled during a load phase and treated as read-only afterwards. The
// registry has no lock: publishing a new one is the caller's job.
type Registry struct {
	byCategory map[Category][]*Recipe
	count      int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byCategory: make(map[Category][]*Recipe)}
}

// Register appends the recipe to its category. It reports whether a recipe
// with the same ID was already present; the recipe is added either way.
func (r *Registry) Register(recipe *Recipe) (duplicate bool) {
	_, duplicate = r.Lookup(recipe.Category, recipe.ID)
	r.byCategory[recipe.Category] = append(r.byCategory[recipe.Category], recipe)
	r.count++
	return duplicate
}

// Len returns the total number of recipes.
func (r *Registry) Len() int {
	return r.count
}

// Recipes returns a copy of the category's recipes in registration order.
func (r *Registry) Recipes(cat Category) []*Recipe {
	return slices.Clone(r.byCategory[cat])
}

// Lookup returns the first recipe of the category with the given ID.
func (r *Registry) Lookup(cat Category, id string) (*Recipe, bool) {
	for _, rec := range r.byCategory[cat] {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// Counts returns the number of recipes per category, including empty ones.
func (r *Registry) Counts() map[Category]int {
	out := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		out[cat] = len(r.byCategory[cat])
	}
	return out
}

// Accepts reports whether any recipe of the category could use the identity
// as an input. Dispatchers use it to drop irrelevant pickups early.
func (r *Registry) Accepts(cat Category, id Identity) bool {
	for _, rec := range r.byCategory[cat] {
		if rec.Accepts(id) {
			return true
		}
	}
	return false
}

// ApplyFirst crafts the first recipe of the category for which canCraft
// holds and reports whether one did.
func (r *Registry) ApplyFirst(cat Category, canCraft func(*Recipe) bool, craft func(*Recipe)) bool {
	for _, rec := range r.byCategory[cat] {
		if canCraft(rec) {
			craft(rec)
			return true
		}
	}
	return false
}

// ApplyAll crafts every recipe of the category for which canCraft holds,
// in registration order, and returns how many crafted. canCraft runs right
// before each candidate recipe, after earlier crafts have mutated the world.
func (r *Registry) ApplyAll(cat Category, canCraft func(*Recipe) bool, craft func(*Recipe)) int {
	n := 0
	for _, rec := range r.byCategory[cat] {
		if canCraft(rec) {
			craft(rec)
			n++
		}
	}
	return n
}
