package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"almanac/models"
)

var (
	// ErrNotFound is returned when an operation targets a nonexistent id.
	ErrNotFound = errors.New("event not found")
	// ErrMissingField is returned when a required field is empty on insert.
	ErrMissingField = errors.New("missing required field")
)

// EventStore is the single gateway to persisted events. It is constructed
// once at startup and passed explicitly to anything that touches events;
// there is no package-level database handle.
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// Insert persists a new event and returns its assigned id.
func (s *EventStore) Insert(event *models.Event) (uint, error) {
	if event.Title == "" || event.Date == "" {
		return 0, ErrMissingField
	}
	if _, err := time.Parse(models.DateLayout, event.Date); err != nil {
		return 0, ErrMissingField
	}
	if result := s.db.Create(event); result.Error != nil {
		return 0, result.Error
	}
	return event.ID, nil
}

// InsertAll persists a batch of events in one transaction. Used by the
// recurrence handler so a half-expanded series never hits the database.
func (s *EventStore) InsertAll(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		if events[i].Title == "" || events[i].Date == "" {
			return ErrMissingField
		}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&events).Error
	})
}

// ListAll returns every event ordered by (date, time) ascending. An empty
// time sorts before any set time, which keeps all-day events first within
// a day.
func (s *EventStore) ListAll() ([]models.Event, error) {
	var events []models.Event
	if result := s.db.Order("date, time").Find(&events); result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// Get returns the event with the given id.
func (s *EventStore) Get(id uint) (models.Event, error) {
	var event models.Event
	if result := s.db.First(&event, id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, result.Error
	}
	return event, nil
}

// Update replaces the mutable fields of the event with the given id.
// The id and creation timestamp are preserved.
func (s *EventStore) Update(id uint, title, date, eventTime, description, category string) (models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return models.Event{}, err
	}

	event.Title = title
	event.Date = date
	event.Time = eventTime
	event.Description = description
	event.Category = category

	if result := s.db.Save(&event); result.Error != nil {
		return models.Event{}, result.Error
	}
	return event, nil
}

// Delete removes the event with the given id permanently.
func (s *EventStore) Delete(id uint) (models.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return models.Event{}, err
	}
	if result := s.db.Delete(&event); result.Error != nil {
		return models.Event{}, result.Error
	}
	return event, nil
}
