package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"worldcraft/core/loader"
	"worldcraft/core/logger"
	"worldcraft/core/middleware/auth"
	"worldcraft/core/middleware/rayid"
	"worldcraft/feature/recipes"
	"worldcraft/feature/simulate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "worldcraft/docs/swagger"
)

// @title Worldcraft API
// @version 1.0
// @description API for loading, inspecting and simulating in-world recipes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the recipe server",
	Long:  `Loads recipes from the configured source, starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// An empty registry is still served; POST /recipes/reload can fix it later
		if _, err := rt.recipes.Reload(context.Background()); err != nil {
			logg.Error("Initial recipe load failed", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(recipes.NewFeature(rt.recipes))
		mgr.Register(simulate.NewFeature(rt.dispatcher, logg, rt.cfg.Recipes.Simulator))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		errs := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			errs <- app.Listen(rt.cfg.Server.Address())
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errs:
			return fmt.Errorf("server failed: %w", err)
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(rt.cfg.Server.ShutdownTimeout())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
