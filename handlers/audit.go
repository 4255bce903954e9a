package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"almanac/models"
	"almanac/services"
)

// AuditHandler serves the audit log listing
type AuditHandler struct {
	Audit *services.AuditLogger
}

func NewAuditHandler(audit *services.AuditLogger) *AuditHandler {
	return &AuditHandler{Audit: audit}
}

// ListAuditLogs returns a page of audit logs, newest first
func (h *AuditHandler) ListAuditLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	action := c.Query("action")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	logs, total, err := h.Audit.ListLogs(action, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch audit logs",
		})
	}

	responses := make([]models.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = log.ToResponse()
	}

	return c.JSON(fiber.Map{
		"logs":  responses,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetAuditActions returns available audit actions for filtering
func (h *AuditHandler) GetAuditActions(c *fiber.Ctx) error {
	actions := []string{
		string(models.AuditActionLogin),
		string(models.AuditActionEventCreate),
		string(models.AuditActionEventUpdate),
		string(models.AuditActionEventDelete),
		string(models.AuditActionRecurringCreate),
	}

	return c.JSON(actions)
}
