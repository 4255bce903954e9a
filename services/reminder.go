package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"almanac/models"
)

// EventSource is the read-only slice of the event store the scanner is
// allowed to see. It never writes.
type EventSource interface {
	ListAll() ([]models.Event, error)
}

// ReminderScanner periodically scans all events and announces the ones
// whose start time falls inside the lookahead window. An event inside the
// window is re-announced on every run; there is no suppression state to
// lose or corrupt, and the window is short.
type ReminderScanner struct {
	source    EventSource
	lookahead time.Duration
	notify    func(message string)
	cron      *cron.Cron
}

// NewReminderScanner builds a scanner over source. notify receives each
// notification message; pass nil to just log them.
func NewReminderScanner(source EventSource, lookahead time.Duration, notify func(string)) *ReminderScanner {
	if notify == nil {
		notify = func(message string) {
			log.Println(message)
		}
	}
	return &ReminderScanner{
		source:    source,
		lookahead: lookahead,
		notify:    notify,
	}
}

// Start runs the scanner on the given fixed interval until Stop is called.
func (s *ReminderScanner) Start(interval time.Duration) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		s.Scan(time.Now())
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the interval schedule. A scan already in flight finishes.
func (s *ReminderScanner) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Scan announces every event whose date-time falls within
// [now, now+lookahead] inclusive. Events without a time are skipped, as
// are events whose stored date or time fails to parse; one bad record
// never aborts the scan.
func (s *ReminderScanner) Scan(now time.Time) {
	events, err := s.source.ListAll()
	if err != nil {
		log.Printf("reminder scan: failed to list events: %v", err)
		return
	}

	soon := now.Add(s.lookahead)
	for _, e := range events {
		if e.Time == "" {
			continue
		}
		at, err := time.ParseInLocation(
			models.DateLayout+" "+models.TimeLayout,
			e.Date+" "+e.Time,
			now.Location(),
		)
		if err != nil {
			continue
		}
		if !at.Before(now) && !at.After(soon) {
			s.notify(fmt.Sprintf("Reminder: '%s' at %s", e.Title, at.Format("03:04 PM")))
		}
	}
}
