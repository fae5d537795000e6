package inventory

import (
	"cdn-manager/core/faults"
	"cdn-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory reads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleKinds)
	group.Get("/:kind", h.HandleGet)
}

// HandleKinds lists the readable kinds.
// @Summary List Inventory Kinds
// @Tags inventory
// @Produce json
// @Success 200 {array} string "Kinds"
// @Router /inventory [get]
func (h *Handler) HandleKinds(c *fiber.Ctx) error {
	return c.JSON(h.service.Kinds())
}

// HandleGet returns a decoded collection.
// @Summary Get Inventory
// @Description Reads a StrikeTracker collection (origins, hosts, pops, platforms...) and returns its decoded projection.
// @Tags inventory
// @Produce json
// @Param kind path string true "Inventory kind (e.g. 'pops')"
// @Success 200 {object} interface{} "Collection"
// @Failure 400 {object} map[string]string "Unknown kind"
// @Failure 502 {object} map[string]string "StrikeTracker API failure"
// @Router /inventory/{kind} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	kind := c.Params("kind")

	value, err := h.service.Get(c.UserContext(), kind)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Inventory read failed", zap.String("kind", kind), zap.Error(err))
		return c.Status(faults.HTTPStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(value)
}
