package models

import (
	"time"
)

// DateLayout is the canonical storage format for event dates.
const DateLayout = "2006-01-02"

// TimeLayout is the canonical storage format for event times of day.
const TimeLayout = "15:04"

// categoryColors maps known category labels to their display color.
var categoryColors = map[string]string{
	"None":     "#FFFFFF",
	"School":   "#ffdc97",
	"Work":     "#bbdefb",
	"Health":   "#fefb98",
	"Personal": "#ffcdd2",
	"Other":    "#eeeeee",
}

// DefaultCategoryColor is used for categories outside the known set.
const DefaultCategoryColor = "#3788d8"

// Categories returns the known category labels in display order.
func Categories() []string {
	return []string{"None", "School", "Work", "Health", "Personal", "Other"}
}

// CategoryColor returns the display color for a category label.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultCategoryColor
}

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Date        string    `gorm:"not null;index" json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput is used for creating an event from the add form.
type EventInput struct {
	Title    string `json:"title" form:"title"`
	Date     string `json:"date" form:"date"`
	Time     string `json:"time" form:"time"`
	Desc     string `json:"desc" form:"desc"`
	Category string `json:"category" form:"category"`
}

// EventUpdateInput is used for saving edits to an existing event.
// The edit form posts the full description field name, unlike the add form.
type EventUpdateInput struct {
	Title       string `json:"title" form:"title"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
}

// RecurringEventInput is used for bulk-creating events from a recurrence
// rule. ExcludeDays carries 1-based weekday codes (Monday=1 .. Sunday=7)
// and only applies to the daily pattern.
type RecurringEventInput struct {
	Title       string   `json:"title" form:"title"`
	Recurrence  string   `json:"recurrence" form:"recurrence"`
	StartDate   string   `json:"start_date" form:"start_date"`
	EndDate     string   `json:"end_date" form:"end_date"`
	Time        string   `json:"time" form:"time"`
	Desc        string   `json:"desc" form:"desc"`
	Category    string   `json:"category" form:"category"`
	ExcludeDays []string `json:"exclude_days" form:"exclude_days"`
}

// CalendarEntry is the response shape consumed by the calendar frontend.
type CalendarEntry struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Color       string `json:"color"`
	TextColor   string `json:"textColor"`
}

func (e *Event) ToCalendarEntry() CalendarEntry {
	return CalendarEntry{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Color:       CategoryColor(e.Category),
		TextColor:   "black",
	}
}

// DayEvent is an event as presented in a single-day view. Events without
// a time display at end of day; the stored record keeps its empty time.
type DayEvent struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (e *Event) ToDayEvent() DayEvent {
	displayTime := e.Time
	if displayTime == "" {
		displayTime = "23:59"
	}
	return DayEvent{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        displayTime,
		Description: e.Description,
		Category:    e.Category,
	}
}
