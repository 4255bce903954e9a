package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"almanac/models"
	"almanac/services"
)

// CalendarView returns the context for the calendar shell; the frontend
// fills it from /events
func (h *EventHandler) CalendarView(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": models.Categories(),
	})
}

// DayView returns the events for one ISO date plus a human-readable label.
// Events without a time display at 23:59; the stored records are untouched.
func (h *EventHandler) DayView(c *fiber.Ctx) error {
	date := c.Params("date")
	parsed, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date must be a valid YYYY-MM-DD date",
		})
	}

	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	dayEvents := services.FilterByDay(events, parsed.Year(), parsed.Month(), parsed.Day())
	responses := make([]models.DayEvent, len(dayEvents))
	for i, e := range dayEvents {
		responses[i] = e.ToDayEvent()
	}

	return c.JSON(fiber.Map{
		"date":      date,
		"full_date": parsed.Format("Monday, January 02"),
		"events":    responses,
	})
}

// TaskView returns the events for the requested day, defaulting to today.
// Query params day, month and year override the default individually.
func (h *EventHandler) TaskView(c *fiber.Ctx) error {
	today := time.Now()
	day := c.QueryInt("day", today.Day())
	month := c.QueryInt("month", int(today.Month()))
	year := c.QueryInt("year", today.Year())

	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	return c.JSON(services.FilterByDay(events, year, time.Month(month), day))
}

// EventsJSON returns every event in the shape the calendar frontend
// consumes, with category colors resolved
func (h *EventHandler) EventsJSON(c *fiber.Ctx) error {
	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	entries := make([]models.CalendarEntry, len(events))
	for i, e := range events {
		entries[i] = e.ToCalendarEntry()
	}

	return c.JSON(entries)
}

// ExportICS serves the whole calendar as an iCalendar file
func (h *EventHandler) ExportICS(c *fiber.Ctx) error {
	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	cal := services.BuildCalendar(events)

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="almanac.ics"`)
	return c.SendString(cal.Serialize())
}
