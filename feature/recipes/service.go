package recipes

import (
	"context"
	"fmt"
	"io"

	"worldcraft/core/crafting"
	"worldcraft/core/dispatch"
	"worldcraft/core/wire"

	"golang.org/x/sync/singleflight"
	"go.uber.org/zap"
)

// Service loads recipe definitions and publishes them to a dispatcher.
type Service struct {
	source     Source
	resolver   Resolver
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger
	reloads    singleflight.Group
}

// NewService creates a new recipes service.
func NewService(source Source, resolver Resolver, dispatcher *dispatch.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		source:     source,
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Reload rebuilds the registry from the source and swaps it in. Callers
// arriving while a reload runs share its result. On a source failure the
// current registry stays in place.
func (s *Service) Reload(ctx context.Context) (*Result, error) {
	v, err, shared := s.reloads.Do("reload", func() (any, error) {
		res, err := Build(ctx, s.source, s.resolver, s.logger)
		if err != nil {
			return nil, err
		}
		s.dispatcher.Swap(res.Registry)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Reload shared with a concurrent caller")
	}
	return v.(*Result), nil
}

// Registry returns the registry currently published.
func (s *Service) Registry() *crafting.Registry {
	return s.dispatcher.Registry()
}

// Counts returns the number of recipes per category.
func (s *Service) Counts() map[crafting.Category]int {
	return s.Registry().Counts()
}

// List returns the recipes of one category in scan order.
func (s *Service) List(category string) ([]*crafting.Recipe, error) {
	cat, err := crafting.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return s.Registry().Recipes(cat), nil
}

// Get returns one recipe by category and name.
func (s *Service) Get(category, name string) (*crafting.Recipe, error) {
	cat, err := crafting.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	r, ok := s.Registry().Lookup(cat, string(cat)+"/"+name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, cat, name)
	}
	return r, nil
}

// Export writes the published registry in wire form.
func (s *Service) Export(w io.Writer) error {
	return wire.EncodeRegistry(w, s.Registry())
}
