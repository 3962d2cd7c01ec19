package crafting

import "slices"

// IngredientKind selects how an Ingredient tests an identity.
type IngredientKind uint8

const (
	// IngredientIdentity accepts exactly one identity.
	IngredientIdentity IngredientKind = iota + 1
	// IngredientTag accepts any member of a tag group.
	IngredientTag
)

func (k IngredientKind) String() string {
	switch k {
	case IngredientIdentity:
		return "identity"
	case IngredientTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Ingredient is a predicate over an identity with a quantity threshold.
//
// Tag ingredients are resolved to their members when the recipe is loaded, so
// matching never consults a catalog.
type Ingredient struct {
	Kind    IngredientKind `json:"kind"`
	Key     string         `json:"key"`
	Members []Identity     `json:"members,omitempty"`
	Count   int            `json:"count"`
}

// Exact returns an ingredient accepting a single identity.
func Exact(id Identity, count int) Ingredient {
	return Ingredient{Kind: IngredientIdentity, Key: string(id), Count: count}
}

// Tagged returns an ingredient accepting any of the tag's members.
func Tagged(tag string, members []Identity, count int) Ingredient {
	return Ingredient{Kind: IngredientTag, Key: tag, Members: members, Count: count}
}

// Test reports whether the ingredient accepts the identity.
func (i Ingredient) Test(id Identity) bool {
	if id.IsEmpty() {
		return false
	}
	switch i.Kind {
	case IngredientIdentity:
		return Identity(i.Key) == id
	case IngredientTag:
		return slices.Contains(i.Members, id)
	default:
		return false
	}
}

// Required returns the number of units the ingredient consumes.
func (i Ingredient) Required() int {
	if i.Count < 1 {
		return 1
	}
	return i.Count
}

// Take returns how many units of the stack the ingredient would consume when
// it still needs the given amount. Zero means the stack is not eligible.
func (i Ingredient) Take(stack Stack, need int) int {
	if need <= 0 || stack.Empty() || !i.Test(stack.ID) {
		return 0
	}
	return min(need, stack.Count)
}
