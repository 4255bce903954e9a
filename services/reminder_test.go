package services

import (
	"strings"
	"testing"
	"time"

	"almanac/models"
)

type staticSource struct {
	events []models.Event
}

func (s *staticSource) ListAll() ([]models.Event, error) {
	return s.events, nil
}

func eventAt(title string, at time.Time) models.Event {
	return models.Event{
		Title: title,
		Date:  at.Format(models.DateLayout),
		Time:  at.Format(models.TimeLayout),
	}
}

func runScan(t *testing.T, now time.Time, events []models.Event) []string {
	t.Helper()
	var notifications []string
	scanner := NewReminderScanner(&staticSource{events: events}, 30*time.Minute, func(message string) {
		notifications = append(notifications, message)
	})
	scanner.Scan(now)
	return notifications
}

func TestScanNotifiesInsideWindow(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	got := runScan(t, now, []models.Event{
		eventAt("Dentist", now.Add(10*time.Minute)),
	})

	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if want := "Reminder: 'Dentist' at 12:10 PM"; got[0] != want {
		t.Errorf("got notification %q, want %q", got[0], want)
	}
}

func TestScanWindowBoundaries(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset time.Duration
		want   int
	}{
		{"exactly now", 0, 1},
		{"ten minutes ahead", 10 * time.Minute, 1},
		{"exactly thirty minutes", 30 * time.Minute, 1},
		{"forty minutes ahead", 40 * time.Minute, 0},
		{"one minute in the past", -time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runScan(t, now, []models.Event{
				eventAt("Checkup", now.Add(tt.offset)),
			})
			if len(got) != tt.want {
				t.Errorf("got %d notifications, want %d", len(got), tt.want)
			}
		})
	}
}

func TestScanSkipsEventsWithoutTime(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	got := runScan(t, now, []models.Event{
		{Title: "All day", Date: now.Format(models.DateLayout)},
		eventAt("Timed", now.Add(5*time.Minute)),
	})

	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if !strings.Contains(got[0], "Timed") {
		t.Errorf("notification %q is not for the timed event", got[0])
	}
}

func TestScanSkipsMalformedEvents(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	got := runScan(t, now, []models.Event{
		{Title: "Bad time", Date: now.Format(models.DateLayout), Time: "noonish"},
		{Title: "Bad date", Date: "someday", Time: "12:05"},
		eventAt("Good", now.Add(5*time.Minute)),
	})

	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if !strings.Contains(got[0], "Good") {
		t.Errorf("notification %q is not for the valid event", got[0])
	}
}
