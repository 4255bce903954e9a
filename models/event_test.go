package models

import (
	"testing"
)

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"None", "#FFFFFF"},
		{"School", "#ffdc97"},
		{"Work", "#bbdefb"},
		{"Health", "#fefb98"},
		{"Personal", "#ffcdd2"},
		{"Other", "#eeeeee"},
		{"Birthdays", DefaultCategoryColor},
		{"", DefaultCategoryColor},
	}

	for _, tt := range tests {
		if got := CategoryColor(tt.category); got != tt.want {
			t.Errorf("CategoryColor(%q) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

func TestToCalendarEntry(t *testing.T) {
	e := Event{ID: 7, Title: "Dentist", Date: "2024-03-01", Time: "14:30", Description: "Checkup", Category: "Health"}

	entry := e.ToCalendarEntry()
	if entry.ID != 7 || entry.Title != "Dentist" || entry.Date != "2024-03-01" {
		t.Errorf("ToCalendarEntry() = %+v, want event fields carried over", entry)
	}
	if entry.Color != "#fefb98" {
		t.Errorf("got color %q, want %q", entry.Color, "#fefb98")
	}
	if entry.TextColor != "black" {
		t.Errorf("got textColor %q, want %q", entry.TextColor, "black")
	}
}

func TestToDayEventDefaultsTime(t *testing.T) {
	e := Event{ID: 1, Title: "All day", Date: "2024-03-01"}

	day := e.ToDayEvent()
	if day.Time != "23:59" {
		t.Errorf("got display time %q, want 23:59", day.Time)
	}
	// The stored record must not pick up the display default.
	if e.Time != "" {
		t.Errorf("stored event time mutated to %q", e.Time)
	}
}

func TestToDayEventKeepsSetTime(t *testing.T) {
	e := Event{ID: 1, Title: "Timed", Date: "2024-03-01", Time: "09:15"}

	if day := e.ToDayEvent(); day.Time != "09:15" {
		t.Errorf("got display time %q, want 09:15", day.Time)
	}
}
