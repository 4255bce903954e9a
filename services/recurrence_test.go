package services

import (
	"errors"
	"testing"
	"time"

	"almanac/models"
)

func baseRequest(pattern, start, end string) RecurrenceRequest {
	return RecurrenceRequest{
		Title:       "Standup",
		Category:    "Work",
		Time:        "09:00",
		Description: "Daily sync",
		Pattern:     pattern,
		StartDate:   start,
		EndDate:     end,
	}
}

func datesOf(events []models.Event) []string {
	dates := make([]string, len(events))
	for i, e := range events {
		dates[i] = e.Date
	}
	return dates
}

func assertDates(t *testing.T, events []models.Event, want []string) {
	t.Helper()
	got := datesOf(events)
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got date %s, want %s", i, got[i], want[i])
		}
	}
}

func TestExpandDaily(t *testing.T) {
	events, err := ExpandRecurrence(baseRequest(PatternDaily, "2024-01-01", "2024-01-07"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	})
}

func TestExpandDailySharedFields(t *testing.T) {
	req := baseRequest(PatternDaily, "2024-01-01", "2024-01-03")
	events, err := ExpandRecurrence(req)
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	for i, e := range events {
		if e.Title != req.Title || e.Time != req.Time || e.Description != req.Description || e.Category != req.Category {
			t.Errorf("event %d fields differ from request: %+v", i, e)
		}
	}
}

func TestExpandDailyExcludesSundays(t *testing.T) {
	req := baseRequest(PatternDaily, "2024-01-01", "2024-01-14")
	req.ExcludeDays = []string{"7"}

	events, err := ExpandRecurrence(req)
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}

	// Two Sundays (Jan 7 and Jan 14) fall in the range.
	if len(events) != 12 {
		t.Errorf("got %d events, want 12", len(events))
	}
	for _, e := range events {
		d, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", e.Date, err)
		}
		if d.Weekday() == time.Sunday {
			t.Errorf("event on %s falls on Sunday despite exclusion", e.Date)
		}
	}
}

func TestExpandDailyExcludesWeekend(t *testing.T) {
	req := baseRequest(PatternDaily, "2024-01-01", "2024-01-07")
	req.ExcludeDays = []string{"6", "7"}

	events, err := ExpandRecurrence(req)
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
	})
}

func TestExpandWeekly(t *testing.T) {
	events, err := ExpandRecurrence(baseRequest(PatternWeekly, "2024-01-01", "2024-01-22"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22",
	})
}

func TestExpandWeeklyPartialLastWeek(t *testing.T) {
	// The end date cuts the range mid-week; 01-29 must not appear.
	events, err := ExpandRecurrence(baseRequest(PatternWeekly, "2024-01-01", "2024-01-25"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22",
	})
}

func TestExpandMonthly(t *testing.T) {
	events, err := ExpandRecurrence(baseRequest(PatternMonthly, "2024-01-15", "2024-04-15"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-15", "2024-02-15", "2024-03-15", "2024-04-15",
	})
}

func TestExpandMonthlyYearRollover(t *testing.T) {
	events, err := ExpandRecurrence(baseRequest(PatternMonthly, "2023-11-15", "2024-02-15"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2023-11-15", "2023-12-15", "2024-01-15", "2024-02-15",
	})
}

func TestExpandMonthlyClampsShortMonths(t *testing.T) {
	// The 31st does not exist in February or April; those months clamp to
	// their last day while later months return to the anchor.
	events, err := ExpandRecurrence(baseRequest(PatternMonthly, "2024-01-31", "2024-04-30"))
	if err != nil {
		t.Fatalf("ExpandRecurrence() error = %v", err)
	}
	assertDates(t, events, []string{
		"2024-01-31", "2024-02-29", "2024-03-31", "2024-04-30",
	})
}

func TestExpandStartAfterEnd(t *testing.T) {
	for _, pattern := range []string{PatternDaily, PatternWeekly, PatternMonthly} {
		events, err := ExpandRecurrence(baseRequest(pattern, "2024-02-01", "2024-01-01"))
		if err != nil {
			t.Errorf("%s: ExpandRecurrence() error = %v, want nil", pattern, err)
		}
		if len(events) != 0 {
			t.Errorf("%s: got %d events, want 0", pattern, len(events))
		}
	}
}

func TestExpandInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecurrenceRequest)
	}{
		{"bad start date", func(r *RecurrenceRequest) { r.StartDate = "01/01/2024" }},
		{"bad end date", func(r *RecurrenceRequest) { r.EndDate = "not-a-date" }},
		{"unknown pattern", func(r *RecurrenceRequest) { r.Pattern = "fortnightly" }},
		{"weekday code zero", func(r *RecurrenceRequest) { r.ExcludeDays = []string{"0"} }},
		{"weekday code eight", func(r *RecurrenceRequest) { r.ExcludeDays = []string{"8"} }},
		{"weekday code text", func(r *RecurrenceRequest) { r.ExcludeDays = []string{"monday"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(PatternDaily, "2024-01-01", "2024-01-07")
			tt.mutate(&req)
			if _, err := ExpandRecurrence(req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ExpandRecurrence() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestWeekdayCode(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1}, // Monday
		{"2024-01-03", 3}, // Wednesday
		{"2024-01-06", 6}, // Saturday
		{"2024-01-07", 7}, // Sunday
	}

	for _, tt := range tests {
		d, err := time.Parse(models.DateLayout, tt.date)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tt.date, err)
		}
		if got := weekdayCode(d); got != tt.want {
			t.Errorf("weekdayCode(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
