package domains

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"

	"domain-checker/core/grid"
	"domain-checker/core/logger"
	"domain-checker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for domain tables.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, logger: service.logger}
}

// RegisterRoutes registers the domains routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/domains")
	group.Post("/reconcile", h.HandleReconcile)
	group.Get("/check/:name", h.HandleCheck)
	group.Get("/history/:name", h.HandleHistory)
}

// HandleReconcile fills the blank cells of an uploaded table.
// @Summary Reconcile Table
// @Description Upload an .xlsx or .csv table; blank status cells are probed and the updated file is returned. Existing statuses are never changed.
// @Tags domains
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Domain table (.xlsx or .csv)"
// @Param workers query int false "Probes in flight"
// @Success 200 {file} file "Updated table"
// @Failure 400 {object} map[string]string "Malformed table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /domains/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'file' is required",
		})
	}

	format, err := grid.FormatOf(fh.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	opts := Options{Workers: c.QueryInt("workers", 0)}
	out, report, err := h.service.ReconcileBytes(c.UserContext(), format, data, opts)
	if err != nil {
		if errors.Is(err, reconcile.ErrMalformedInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", path.Base(fh.Filename)))
	c.Set("X-Run-ID", report.RunID)
	c.Set("X-Checked", strconv.Itoa(report.Summary.Checked))
	c.Set("X-Resolved", strconv.Itoa(report.Summary.Resolved()))
	c.Set("X-Errors", strconv.Itoa(report.Summary.Errors))
	return c.Send(out)
}

// HandleCheck probes a single name.
// @Summary Check Domain
// @Description Probe whether a fully qualified domain name is registered.
// @Tags domains
// @Produce json
// @Param name path string true "Domain name (e.g. 'example.com')"
// @Success 200 {object} ProbeReport "Probe result"
// @Failure 502 {object} ProbeReport "Probe failed"
// @Router /domains/check/{name} [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	rep := h.service.Probe(c.UserContext(), c.Params("name"))
	if rep.Error != "" {
		logger.WithRayID(h.logger, c).Warn("Probe failed", zap.String("name", rep.Name), zap.String("error", rep.Error))
		return c.Status(fiber.StatusBadGateway).JSON(rep)
	}
	return c.JSON(rep)
}

// HandleHistory lists recent checks of a name.
// @Summary Domain History
// @Description Recent probes of a domain name recorded during reconciliation runs.
// @Tags domains
// @Produce json
// @Param name path string true "Domain name (e.g. 'example.com')"
// @Param limit query int false "Maximum rows"
// @Success 200 {array} history.CheckRecord "Recent checks"
// @Failure 503 {object} map[string]string "History unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /domains/history/{name} [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	records, err := h.service.History(c.UserContext(), c.Params("name"), c.QueryInt("limit", 0))
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("History query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
