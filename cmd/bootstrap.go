package cmd

import (
	"fmt"

	"worldcraft/core/catalog"
	"worldcraft/core/config"
	"worldcraft/core/crafting"
	"worldcraft/core/database"
	"worldcraft/core/dispatch"
	"worldcraft/core/logger"
	"worldcraft/core/storage"
	"worldcraft/feature/recipes"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is what every command needs once configuration is loaded.
type runtime struct {
	cfg        *config.Config
	logger     *zap.Logger
	fs         afero.Fs
	store      storage.Client
	dispatcher *dispatch.Dispatcher
	recipes    *recipes.Service
}

// bootstrap loads configuration and wires the recipe service. Storage and
// the database are only connected when the configured source needs them.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Recipes.IsValidSource() {
		return nil, fmt.Errorf("unknown recipe source %q", cfg.Recipes.Source)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg, fs: afero.NewOsFs()}

	if cfg.Recipes.Source == recipes.SourceBucket {
		if rt.store, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	var db *gorm.DB
	if cfg.Recipes.Source == recipes.SourceTable {
		if db, err = database.Connect(cfg.Database); err != nil {
			return nil, err
		}
		logg.Info("Connected to recipe database", zap.String("driver", cfg.Database.Driver))
	}

	var cat *catalog.Catalog
	if cfg.Recipes.Catalog != "" {
		if cat, err = catalog.Load(rt.fs, cfg.Recipes.Catalog); err != nil {
			return nil, err
		}
		logg.Info("Material catalog loaded", zap.Int("materials", cat.Len()))
	}

	src, err := recipes.NewSource(cfg.Recipes, rt.fs, rt.store, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, err
	}

	rt.dispatcher = dispatch.New(nil, logg, dispatch.WithAnvil(crafting.Identity(cfg.Recipes.AnvilMaterial)))
	rt.recipes = recipes.NewService(src, cat, rt.dispatcher, logg)
	return rt, nil
}
