package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeeTime_IsFull(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		players  int
		want     bool
	}{
		{name: "empty slot", capacity: 4, players: 0, want: false},
		{name: "partially filled", capacity: 4, players: 3, want: false},
		{name: "exactly full", capacity: 4, players: 4, want: true},
		{name: "over capacity after shrink", capacity: 2, players: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := &TeeTime{Capacity: tt.capacity, Players: make([]Player, tt.players)}
			assert.Equal(t, tt.want, slot.IsFull())
		})
	}
}

func TestTeeTime_Remaining(t *testing.T) {
	slot := &TeeTime{Capacity: 4, Players: make([]Player, 1)}
	assert.Equal(t, 3, slot.Remaining())

	// Снижение capacity ниже числа занятых не дает отрицательный остаток
	shrunk := &TeeTime{Capacity: 2, Players: make([]Player, 3)}
	assert.Equal(t, 0, shrunk.Remaining())
}

func TestTeeTime_FindPlayer(t *testing.T) {
	slot := &TeeTime{
		Players: []Player{
			{ID: 10, Name: "Alice"},
			{ID: 20, Name: "Bob"},
		},
	}

	found := slot.FindPlayer(20)
	assert.NotNil(t, found)
	assert.Equal(t, "Bob", found.Name)

	assert.Nil(t, slot.FindPlayer(99))
}

func TestEvent_FindTeeTime(t *testing.T) {
	event := &Event{
		TeeTimes: []TeeTime{
			{ID: 1, Time: "07:00"},
			{ID: 2, Time: "07:09"},
		},
	}

	slot := event.FindTeeTime(2)
	assert.NotNil(t, slot)
	assert.Equal(t, "07:09", slot.Time.String())

	assert.Nil(t, event.FindTeeTime(3))
}

func TestEvent_IsUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	past := &Event{Date: now.Add(-time.Hour)}
	assert.False(t, past.IsUpcoming(now))

	today := &Event{Date: now}
	assert.True(t, today.IsUpcoming(now))

	future := &Event{Date: now.Add(24 * time.Hour)}
	assert.True(t, future.IsUpcoming(now))
}

func TestEvent_IsTeeTimeEvent(t *testing.T) {
	assert.True(t, (&Event{Type: EventTypeTeeTime}).IsTeeTimeEvent())
	assert.False(t, (&Event{Type: EventTypeTeam}).IsTeeTimeEvent())
}

func TestIsValidEventType(t *testing.T) {
	assert.True(t, IsValidEventType(EventTypeTeeTime))
	assert.True(t, IsValidEventType(EventTypeTeam))
	assert.False(t, IsValidEventType("scramble"))
}

func TestIsValidTemplate(t *testing.T) {
	assert.True(t, IsValidTemplate(TemplateDefault))
	assert.True(t, IsValidTemplate(TemplateGolf))
	assert.True(t, IsValidTemplate(TemplateSocial))
	assert.False(t, IsValidTemplate("corporate"))
}

func TestGroup_HasAccessCode(t *testing.T) {
	code := "sunday-9k3j2a"
	empty := ""

	assert.True(t, (&Group{AccessCode: &code}).HasAccessCode())
	assert.False(t, (&Group{AccessCode: &empty}).HasAccessCode())
	assert.False(t, (&Group{AccessCode: nil}).HasAccessCode())
}

func TestIsValidReminderHour(t *testing.T) {
	assert.True(t, IsValidReminderHour(0))
	assert.True(t, IsValidReminderHour(17))
	assert.True(t, IsValidReminderHour(23))
	assert.False(t, IsValidReminderHour(-1))
	assert.False(t, IsValidReminderHour(24))
}
