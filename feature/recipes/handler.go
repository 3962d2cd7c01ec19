package recipes

import (
	"bytes"
	"errors"

	"worldcraft/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the recipe registry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Get("/", h.HandleCounts)
	group.Get("/sync", h.HandleSync)
	group.Post("/reload", h.HandleReload)
	group.Get("/:category", h.HandleList)
	group.Get("/:category/*", h.HandleGet)
}

// HandleCounts returns the number of recipes per category.
// @Summary Recipe Counts
// @Description Returns the number of loaded recipes per category.
// @Tags recipes
// @Produce json
// @Success 200 {object} map[string]int "Counts"
// @Router /recipes [get]
func (h *Handler) HandleCounts(c *fiber.Ctx) error {
	return c.JSON(countsView(h.service.Counts()))
}

// HandleList returns every recipe of a category.
// @Summary List Recipes
// @Description Lists the recipes of one category in scan order.
// @Tags recipes
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} RecipeView
// @Failure 400 {object} map[string]string "Unknown category"
// @Router /recipes/{category} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	views := make([]RecipeView, 0, len(list))
	for _, r := range list {
		views = append(views, NewRecipeView(r))
	}
	return c.JSON(views)
}

// HandleGet returns one recipe.
// @Summary Get Recipe
// @Description Returns one recipe by category and name.
// @Tags recipes
// @Produce json
// @Param category path string true "Category"
// @Param name path string true "Recipe name"
// @Success 200 {object} RecipeView
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /recipes/{category}/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	r, err := h.service.Get(c.Params("category"), c.Params("*"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewRecipeView(r))
}

// HandleReload rebuilds the registry from the configured source.
// @Summary Reload Recipes
// @Description Rebuilds the registry from the definition source and publishes it. Broken definitions are dropped and reported.
// @Tags recipes
// @Produce json
// @Success 200 {object} ReloadView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recipes/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Reloading recipes")

	res, err := h.service.Reload(c.Context())
	if err != nil {
		l.Error("Recipe reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(newReloadView(res))
}

// HandleSync streams the registry in wire form.
// @Summary Sync Registry
// @Description Returns the whole registry encoded in the binary replication format.
// @Tags recipes
// @Produce application/x-msgpack
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recipes/sync [get]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(&buf); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Registry export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/x-msgpack")
	return c.Send(buf.Bytes())
}
