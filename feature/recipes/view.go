package recipes

import "worldcraft/core/crafting"

// IngredientView is the JSON form of an ingredient.
type IngredientView struct {
	Kind    string   `json:"kind"`
	Key     string   `json:"key"`
	Members []string `json:"members,omitempty"`
	Count   int      `json:"count"`
}

// OutputView is the JSON form of an output.
type OutputView struct {
	Kind    string           `json:"kind"`
	Block   string           `json:"block,omitempty"`
	Items   []crafting.Stack `json:"items,omitempty"`
	Scatter crafting.Scatter `json:"scatter"`
}

// RecipeView is the JSON form of a recipe.
type RecipeView struct {
	ID       string           `json:"id"`
	Category string           `json:"category"`
	Inputs   []IngredientView `json:"inputs"`
	Surface  *IngredientView  `json:"surface,omitempty"`
	Output   OutputView       `json:"output"`
}

// ReloadView reports the outcome of a reload.
type ReloadView struct {
	Recipes    int            `json:"recipes"`
	Counts     map[string]int `json:"counts"`
	Dropped    []string       `json:"dropped"`
	Duplicates []string       `json:"duplicates"`
}

func viewIngredient(in crafting.Ingredient) IngredientView {
	v := IngredientView{Kind: in.Kind.String(), Key: in.Key, Count: in.Required()}
	for _, m := range in.Members {
		v.Members = append(v.Members, string(m))
	}
	return v
}

// NewRecipeView converts a recipe for JSON responses.
func NewRecipeView(r *crafting.Recipe) RecipeView {
	v := RecipeView{
		ID:       r.ID,
		Category: string(r.Category),
		Inputs:   make([]IngredientView, 0, len(r.Inputs)),
		Output: OutputView{
			Kind:    r.Output.Kind.String(),
			Block:   string(r.Output.Block),
			Items:   r.Output.Items,
			Scatter: r.Output.Scatter,
		},
	}
	for _, in := range r.Inputs {
		v.Inputs = append(v.Inputs, viewIngredient(in))
	}
	if r.Surface != nil {
		s := viewIngredient(*r.Surface)
		v.Surface = &s
	}
	return v
}

func countsView(counts map[crafting.Category]int) map[string]int {
	out := make(map[string]int, len(counts))
	for cat, n := range counts {
		out[string(cat)] = n
	}
	return out
}

func newReloadView(res *Result) ReloadView {
	v := ReloadView{
		Recipes:    res.Registry.Len(),
		Counts:     countsView(res.Registry.Counts()),
		Dropped:    []string{},
		Duplicates: res.Duplicates,
	}
	for _, err := range res.Warnings() {
		v.Dropped = append(v.Dropped, err.Error())
	}
	if v.Duplicates == nil {
		v.Duplicates = []string{}
	}
	return v
}
