package services

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"almanac/models"
)

// BuildCalendar renders events as an iCalendar document. Events without a
// time become all-day VEVENTs; timed events get a default one-hour
// duration. Events with an unparseable stored date are skipped.
func BuildCalendar(events []models.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//almanac//calendar//EN")

	for _, e := range events {
		day, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("almanac-%d", e.ID))
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Category != "" && e.Category != "None" {
			ev.SetProperty(ical.ComponentPropertyCategories, e.Category)
		}

		if e.Time == "" {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		start, err := time.Parse(models.DateLayout+" "+models.TimeLayout, e.Date+" "+e.Time)
		if err != nil {
			// Date is good but the time is not; degrade to all-day.
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
	}

	return cal
}
