package recipes

import "errors"

// ErrNotFound is returned when a recipe does not exist in the registry.
var ErrNotFound = errors.New("recipe not found")
