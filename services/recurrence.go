package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"almanac/models"
)

// ErrInvalidInput is returned for malformed dates, unrecognized recurrence
// patterns and out-of-range weekday codes. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")

const (
	PatternDaily   = "daily"
	PatternWeekly  = "weekly"
	PatternMonthly = "monthly"
)

// RecurrenceRequest describes a series of events to materialize. StartDate
// and EndDate are inclusive "YYYY-MM-DD" strings. ExcludeDays carries
// 1-based weekday codes (Monday=1 .. Sunday=7) and only affects the daily
// pattern.
type RecurrenceRequest struct {
	Title       string
	Category    string
	Time        string
	Description string
	Pattern     string
	StartDate   string
	EndDate     string
	ExcludeDays []string
}

// ExpandRecurrence turns a recurrence request into the ordered list of
// concrete events to insert, one per occurrence date ascending. A start
// date after the end date yields an empty list without error.
func ExpandRecurrence(req RecurrenceRequest) ([]models.Event, error) {
	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q is not a valid date", ErrInvalidInput, req.StartDate)
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q is not a valid date", ErrInvalidInput, req.EndDate)
	}

	excluded, err := parseWeekdayCodes(req.ExcludeDays)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0)

	switch req.Pattern {
	case PatternDaily:
		for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
			if excluded[weekdayCode(current)] {
				continue
			}
			events = append(events, req.eventOn(current))
		}

	case PatternWeekly:
		for current := start; !current.After(end); current = current.AddDate(0, 0, 7) {
			events = append(events, req.eventOn(current))
		}

	case PatternMonthly:
		anchor := start.Day()
		year, month := start.Year(), start.Month()
		for {
			day := anchor
			if last := daysInMonth(year, month); day > last {
				// Anchor day missing from this month (e.g. the 31st in
				// February): clamp to the month's last day, keep the anchor
				// for later months.
				day = last
			}
			current := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if current.After(end) {
				break
			}
			events = append(events, req.eventOn(current))
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}

	default:
		return nil, fmt.Errorf("%w: unrecognized recurrence pattern %q", ErrInvalidInput, req.Pattern)
	}

	return events, nil
}

func (r RecurrenceRequest) eventOn(date time.Time) models.Event {
	return models.Event{
		Title:       r.Title,
		Date:        date.Format(models.DateLayout),
		Time:        r.Time,
		Description: r.Description,
		Category:    r.Category,
	}
}

// weekdayCode maps a date's weekday to the 1-based Monday..Sunday = 1..7
// scheme used for exclusion codes throughout.
func weekdayCode(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func parseWeekdayCodes(values []string) (map[int]bool, error) {
	codes := make(map[int]bool, len(values))
	for _, v := range values {
		code, err := strconv.Atoi(v)
		if err != nil || code < 1 || code > 7 {
			return nil, fmt.Errorf("%w: %q is not a valid weekday code", ErrInvalidInput, v)
		}
		codes[code] = true
	}
	return codes, nil
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
