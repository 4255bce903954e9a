package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"almanac/middleware"
	"almanac/models"
	"almanac/services"
)

// AddRecurring expands a recurrence form into concrete events and
// bulk-inserts them
func (h *EventHandler) AddRecurring(c *fiber.Ctx) error {
	var input models.RecurringEventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	events, err := services.ExpandRecurrence(services.RecurrenceRequest{
		Title:       input.Title,
		Category:    input.Category,
		Time:        input.Time,
		Description: input.Desc,
		Pattern:     input.Recurrence,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ExcludeDays: input.ExcludeDays,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to expand recurrence",
		})
	}

	if err := h.Store.InsertAll(events); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create events",
		})
	}

	h.Audit.Log(middleware.GetUserID(c), middleware.GetUsername(c), models.AuditActionRecurringCreate, nil, input.Title,
		fmt.Sprintf("Created %d %s events: %s (%s to %s)", len(events), input.Recurrence, input.Title, input.StartDate, input.EndDate), c.IP())

	return c.Redirect("/add")
}
