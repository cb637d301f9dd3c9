package catalog

import (
	"errors"

	"catalog-sync/core/logger"
	catalogSync "catalog-sync/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the catalog sync engine.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/sync", h.HandleStartSync)
	group.Get("/sync", h.HandleRecentRuns)
	group.Get("/sync/:id", h.HandleGetRun)
	group.Get("/sync/:id/progress", h.HandleProgress)
	group.Post("/index/rebuild", h.HandleRebuildIndex)
	group.Delete("/index", h.HandleInvalidateIndex)
}

type startSyncRequest struct {
	DryRun      bool `json:"dry_run"`
	Incremental bool `json:"incremental"`
}

// HandleStartSync launches a sync run in the background.
// @Summary Start Sync Run
// @Description Start a catalog reconciliation run against the distributor feed.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body startSyncRequest false "Run options"
// @Success 202 {object} map[string]string "Run accepted"
// @Failure 409 {object} map[string]string "Run already in progress"
// @Router /catalog/sync [post]
func (h *Handler) HandleStartSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req startSyncRequest
	// An empty body means a default full run.
	_ = c.BodyParser(&req)

	runID, err := h.service.StartSync(catalogSync.Options{
		DryRun:      req.DryRun,
		Incremental: req.Incremental,
	})
	if err != nil {
		if errors.Is(err, ErrRunInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Failed to start sync run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"run_id": runID,
	})
}

// HandleGetRun returns a full run record.
// @Summary Get Sync Run
// @Description Get the full record of one sync run.
// @Tags catalog
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.SyncRun "Run record"
// @Failure 404 {object} map[string]string "Run not found"
// @Router /catalog/sync/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "run not found",
			})
		}
		l.Error("Failed to load run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(run)
}

// HandleProgress returns the read-only progress projection for a run.
// @Summary Get Sync Progress
// @Description Get the progress projection of a running or finished sync run.
// @Tags catalog
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} models.ProgressView "Progress"
// @Failure 404 {object} map[string]string "Run not found"
// @Router /catalog/sync/{id}/progress [get]
func (h *Handler) HandleProgress(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := h.service.Progress(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "run not found",
			})
		}
		l.Error("Failed to load run progress", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(view)
}

// HandleRecentRuns lists the most recent runs for the shop.
// @Summary List Sync Runs
// @Description List the shop's most recent sync runs, newest first.
// @Tags catalog
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {array} models.SyncRun "Runs"
// @Router /catalog/sync [get]
func (h *Handler) HandleRecentRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.RecentRuns(c.Context(), c.QueryInt("limit"))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}

// HandleRebuildIndex forces a fresh feed index build.
// @Summary Rebuild Feed Index
// @Description Invalidate and rebuild the feed index from the feed sources.
// @Tags catalog
// @Produce json
// @Success 200 {object} IndexStats "Index statistics"
// @Failure 502 {object} map[string]string "Feed unavailable"
// @Router /catalog/index/rebuild [post]
func (h *Handler) HandleRebuildIndex(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.RebuildIndex(c.Context())
	if err != nil {
		l.Error("Feed index rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleInvalidateIndex drops the cached feed index and location id.
// @Summary Invalidate Feed Index
// @Description Clear the cached feed index and location caches.
// @Tags catalog
// @Produce json
// @Success 204 "Invalidated"
// @Router /catalog/index [delete]
func (h *Handler) HandleInvalidateIndex(c *fiber.Ctx) error {
	h.service.InvalidateIndex()
	return c.SendStatus(fiber.StatusNoContent)
}
