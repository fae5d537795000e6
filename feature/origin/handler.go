package origin

import (
	"errors"
	"strconv"

	"cdn-manager/core/faults"
	"cdn-manager/core/history"
	"cdn-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for origins.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the origin and run history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/origins")
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)

	app.Get("/runs", h.HandleRuns)
}

// HandleReconcile converges one origin to the posted options.
// @Summary Reconcile Origin
// @Description Creates, updates or deletes an origin so that it matches the posted options. Set check to preview and diff to include before/after projections.
// @Tags origins
// @Accept json
// @Produce json
// @Param options body Options true "Origin options"
// @Success 200 {object} Report "Reconciliation result"
// @Failure 400 {object} map[string]interface{} "Invalid options"
// @Failure 409 {object} map[string]interface{} "Origin locked by another process"
// @Failure 502 {object} map[string]interface{} "StrikeTracker API failure"
// @Router /origins/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var opts Options
	if err := c.BodyParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	report, err := h.service.Reconcile(c.UserContext(), opts)
	if err != nil {
		l.Error("Origin reconcile failed", zap.String("run_id", report.RunID), zap.Error(err))
		return c.Status(faults.HTTPStatus(err)).JSON(fiber.Map{
			"error":  err.Error(),
			"result": report,
		})
	}
	return c.JSON(report)
}

// HandleList returns every origin on the account.
// @Summary List Origins
// @Tags origins
// @Produce json
// @Success 200 {array} map[string]interface{} "Origins"
// @Failure 502 {object} map[string]string "StrikeTracker API failure"
// @Router /origins [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	origins, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, "List origins failed", err)
	}
	return c.JSON(origins)
}

// HandleGet returns one origin.
// @Summary Get Origin
// @Tags origins
// @Produce json
// @Param id path int true "Origin ID"
// @Success 200 {object} map[string]interface{} "Origin"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /origins/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid origin id " + strconv.Quote(c.Params("id")),
		})
	}

	origin, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "Get origin failed", err)
	}
	return c.JSON(origin)
}

// HandleRuns lists recorded reconciliation runs.
// @Summary List Runs
// @Tags runs
// @Produce json
// @Param kind query string false "Resource kind"
// @Param key query string false "Resource key"
// @Param limit query int false "Maximum number of runs" default(50)
// @Success 200 {array} history.Run "Runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	runs, err := h.service.Runs(c.UserContext(), history.Filter{
		Kind:        c.Query("kind"),
		ResourceKey: c.Query("key"),
		Limit:       c.QueryInt("limit", 50),
	})
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return h.fail(c, "List runs failed", err)
	}
	return c.JSON(runs)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(faults.HTTPStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
