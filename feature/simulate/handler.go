package simulate

import (
	"worldcraft/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for scenario simulation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the simulate routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/simulate", h.HandleSimulate)
}

// HandleSimulate runs a scenario against the loaded recipes.
// @Summary Simulate Scenario
// @Description Builds an in-memory world from the scenario (YAML or JSON), fires its trigger and returns the resulting world. Live worlds are not touched.
// @Tags simulate
// @Accept json
// @Produce json
// @Param scenario body Scenario true "Scenario"
// @Success 200 {object} Outcome
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Router /simulate [post]
func (h *Handler) HandleSimulate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sc, err := Parse(c.Body())
	if err != nil {
		l.Warn("Rejected scenario", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.Run(sc))
}
