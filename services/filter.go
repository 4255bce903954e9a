package services

import (
	"time"

	"almanac/models"
)

// FilterByDay returns the subset of events falling on the given calendar
// day. Dates are parsed and compared field by field; events whose stored
// date fails to parse are skipped. Input order is preserved.
func FilterByDay(events []models.Event, year int, month time.Month, day int) []models.Event {
	matched := make([]models.Event, 0)
	for _, e := range events {
		d, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month && d.Day() == day {
			matched = append(matched, e)
		}
	}
	return matched
}
