package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"almanac/middleware"
	"almanac/models"
	"almanac/services"
	"almanac/store"
)

// EventHandler serves the event CRUD surface. It holds the store it was
// given at startup; nothing here reaches for a global database.
type EventHandler struct {
	Store *store.EventStore
	Audit *services.AuditLogger
}

func NewEventHandler(events *store.EventStore, audit *services.AuditLogger) *EventHandler {
	return &EventHandler{Store: events, Audit: audit}
}

// validateEventFields checks the add/save form fields. Title and a valid
// date are required; a time, when present, must be HH:MM.
func validateEventFields(title, date, eventTime string) error {
	if title == "" {
		return errors.New("Title is required")
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return errors.New("Date must be a valid YYYY-MM-DD date")
	}
	if eventTime != "" {
		if _, err := time.Parse(models.TimeLayout, eventTime); err != nil {
			return errors.New("Time must be a valid HH:MM time")
		}
	}
	return nil
}

// Home returns all events sorted by (date, time)
func (h *EventHandler) Home(c *fiber.Ctx) error {
	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}
	return c.JSON(events)
}

// ShowAddForm returns the context for the add form: the current event
// list plus the known category labels
func (h *EventHandler) ShowAddForm(c *fiber.Ctx) error {
	events, err := h.Store.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}
	return c.JSON(fiber.Map{
		"events":     events,
		"categories": models.Categories(),
	})
}

// AddEvent creates a single event from the add form
func (h *EventHandler) AddEvent(c *fiber.Ctx) error {
	var input models.EventInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validateEventFields(input.Title, input.Date, input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	event := models.Event{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Desc,
		Category:    input.Category,
	}

	if _, err := h.Store.Insert(&event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	h.Audit.Log(middleware.GetUserID(c), middleware.GetUsername(c), models.AuditActionEventCreate, &event.ID, event.Title, "Created event: "+event.Title+" on "+event.Date, c.IP())

	return c.Redirect("/add")
}

// DeleteEvent removes an event by id and redirects to its day view
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := h.Store.Delete(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}

	h.Audit.Log(middleware.GetUserID(c), middleware.GetUsername(c), models.AuditActionEventDelete, &event.ID, event.Title, "Deleted event: "+event.Title, c.IP())

	return c.Redirect("/day/" + event.Date)
}

// ShowEditForm returns the event to prefill the edit form
func (h *EventHandler) ShowEditForm(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := h.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch event",
		})
	}

	return c.JSON(fiber.Map{
		"event":      event,
		"categories": models.Categories(),
	})
}

// SaveEvent applies edits from the edit form and redirects to the
// event's day view
func (h *EventHandler) SaveEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var input models.EventUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validateEventFields(input.Title, input.Date, input.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	event, err := h.Store.Update(uint(id), input.Title, input.Date, input.Time, input.Description, input.Category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}

	h.Audit.Log(middleware.GetUserID(c), middleware.GetUsername(c), models.AuditActionEventUpdate, &event.ID, event.Title, "Updated event: "+event.Title, c.IP())

	return c.Redirect("/day/" + event.Date)
}
