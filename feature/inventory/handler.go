package inventory

import (
	"bytes"

	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the loaded inventory and its reports over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory and report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	inv := app.Group("/inventory")
	inv.Get("/", h.HandleList)
	inv.Get("/:id", h.HandleGet)

	reports := app.Group("/reports")
	reports.Get("/full", h.HandleFull)
	reports.Get("/damaged", h.HandleDamaged)
	reports.Get("/past-service", h.HandlePastService)
	reports.Get("/types/:type", h.HandleType)
}

// HandleList returns every record in load order.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	records := h.service.Inventory().Records()
	return c.JSON(fiber.Map{"count": len(records), "items": records})
}

// HandleGet returns one record.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := h.service.Inventory().Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found", "id": id})
	}
	return c.JSON(rec)
}

func (h *Handler) HandleFull(c *fiber.Ctx) error {
	return h.sendReport(c, FullInventory(h.service.Inventory()))
}

func (h *Handler) HandleDamaged(c *fiber.Ctx) error {
	return h.sendReport(c, DamagedInventory(h.service.Inventory()))
}

func (h *Handler) HandlePastService(c *fiber.Ctx) error {
	return h.sendReport(c, h.service.PastServiceDateInventory())
}

// HandleType returns the per-type report; the type is matched case-insensitively
// the same way report files are named.
func (h *Handler) HandleType(c *fiber.Ctx) error {
	itemType := c.Params("type")
	rep, ok := TypeInventory(h.service.Inventory(), itemType)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item type not found", "type": itemType})
	}
	return h.sendReport(c, rep)
}

func (h *Handler) sendReport(c *fiber.Ctx, rep Report) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, rep.Rows); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to encode report", zap.String("file", rep.File), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rep.File+`"`)
	return c.Send(buf.Bytes())
}
