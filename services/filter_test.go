package services

import (
	"testing"
	"time"

	"almanac/models"
)

func TestFilterByDay(t *testing.T) {
	events := []models.Event{
		{ID: 1, Title: "First", Date: "2024-03-01"},
		{ID: 2, Title: "Second", Date: "2024-03-02"},
		{ID: 3, Title: "Other year", Date: "2023-03-01"},
		{ID: 4, Title: "Also first", Date: "2024-03-01", Time: "14:00"},
	}

	got := FilterByDay(events, 2024, time.March, 1)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 4 {
		t.Errorf("got ids %d, %d, want 1, 4", got[0].ID, got[1].ID)
	}
}

func TestFilterByDayNoMatch(t *testing.T) {
	events := []models.Event{
		{ID: 1, Date: "2024-03-01"},
	}

	if got := FilterByDay(events, 2024, time.March, 15); len(got) != 0 {
		t.Errorf("got %d events, want 0", len(got))
	}
}

func TestFilterByDaySkipsBadDates(t *testing.T) {
	events := []models.Event{
		{ID: 1, Date: "garbage"},
		{ID: 2, Date: "2024-03-01"},
	}

	got := FilterByDay(events, 2024, time.March, 1)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("got %v, want only event 2", got)
	}
}
