package integrity

import (
	"cdn-manager/core/faults"
	"cdn-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleAll)
	group.Get("/:name", h.HandleCheck)
}

// HandleAll runs every check.
// @Summary Run All Integrity Checks
// @Description Checks the StrikeTracker credentials, run history schema, snapshot bucket, redis lock and kafka brokers. Optionally repairs the schema and bucket.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Repair what can be repaired"
// @Success 200 {object} Report "All checks passed"
// @Failure 503 {object} Report "At least one check failed"
// @Router /integrity [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix", false)

	report := h.service.Run(c.UserContext(), fix)
	if !report.Healthy {
		l.Warn("Integrity checks failed", zap.Bool("fix", fix))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleCheck runs one check.
// @Summary Run Integrity Check
// @Tags integrity
// @Produce json
// @Param name path string true "Check name (api, database, storage, lock, events)"
// @Param fix query boolean false "Repair what can be repaired"
// @Success 200 {object} checks.Result "Check passed"
// @Failure 404 {object} map[string]string "Unknown check"
// @Failure 503 {object} checks.Result "Check failed"
// @Router /integrity/{name} [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	res, err := h.service.Check(c.UserContext(), c.Params("name"), c.QueryBool("fix", false))
	if err != nil {
		return c.Status(faults.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if res.Failed() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return c.JSON(res)
}
