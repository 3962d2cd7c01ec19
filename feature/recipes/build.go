package recipes

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"worldcraft/core/crafting"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Result is the outcome of one load.
type Result struct {
	Registry *crafting.Registry
	// Dropped aggregates one error per definition that was skipped.
	Dropped error
	// Duplicates lists IDs registered more than once.
	Duplicates []string
}

// Warnings returns the individual dropped-definition errors.
func (r *Result) Warnings() []error {
	return multierr.Errors(r.Dropped)
}

// Build reads every definition from the source into a fresh registry.
//
// A broken definition drops only that recipe. The returned error is reserved
// for the source itself failing.
func Build(ctx context.Context, src Source, res Resolver, logger *zap.Logger) (*Result, error) {
	docs, err := src.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions from %s: %w", src.Name(), err)
	}

	// Registration order is the scan order, so make it independent of the
	// source's listing order.
	slices.SortStableFunc(docs, func(a, b Document) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})

	result := &Result{Registry: crafting.NewRegistry()}
	for _, doc := range docs {
		r, err := decodeDocument(doc, res)
		if err != nil {
			logger.Warn("Dropping recipe definition",
				zap.String("origin", doc.Origin),
				zap.Error(err),
			)
			result.Dropped = multierr.Append(result.Dropped, fmt.Errorf("%s: %w", doc.Origin, err))
			continue
		}
		if result.Registry.Register(r) {
			logger.Warn("Duplicate recipe id", zap.String("id", r.ID), zap.String("origin", doc.Origin))
			result.Duplicates = append(result.Duplicates, r.ID)
		}
	}

	logger.Info("Recipes loaded",
		zap.String("source", src.Name()),
		zap.Int("recipes", result.Registry.Len()),
		zap.Int("dropped", len(result.Warnings())),
	)
	return result, nil
}

func decodeDocument(doc Document, res Resolver) (*crafting.Recipe, error) {
	cat, err := crafting.ParseCategory(doc.Category)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("definition has no name")
	}
	return Decode(cat, doc.Name, doc.Body, res)
}
