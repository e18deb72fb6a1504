package domain

import "time"

// EventType represents the sign-up structure of an event
type EventType string

const (
	EventTypeTeeTime EventType = "teeTime"
	EventTypeTeam    EventType = "team"
)

// Event represents a scheduled occasion owned by a group.
// It is the aggregate root for its tee times: every slot mutation is
// validated against the event the slot belongs to.
type Event struct {
	ID          int64
	GroupID     int64
	Name        string
	Description *string
	Date        time.Time
	Type        EventType
	TeamSize    int
	StartType   string
	TeeTimes    []TeeTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsUpcoming returns true if the event date is not in the past
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.Date.Before(now)
}

// IsTeeTimeEvent returns true for tee-time structured events
func (e *Event) IsTeeTimeEvent() bool {
	return e.Type == EventTypeTeeTime
}

// FindTeeTime returns the slot with the given ID, or nil if the event does not own it
func (e *Event) FindTeeTime(teeTimeID int64) *TeeTime {
	for i := range e.TeeTimes {
		if e.TeeTimes[i].ID == teeTimeID {
			return &e.TeeTimes[i]
		}
	}
	return nil
}

// IsValidEventType returns true if the type value is one of the known event types
func IsValidEventType(t EventType) bool {
	switch t {
	case EventTypeTeeTime, EventTypeTeam:
		return true
	default:
		return false
	}
}

// EventUpdate набор изменяемых полей события (nil - поле не меняется)
type EventUpdate struct {
	Name        *string
	Description *string
	Date        *time.Time
	Type        *EventType
	TeamSize    *int
	StartType   *string
}

// EventsWindowFilter фильтр выборки событий для напоминаний
// Выбираются события типа teeTime с датой в интервале [From, To]
type EventsWindowFilter struct {
	GroupID int64
	From    time.Time
	To      time.Time
}
