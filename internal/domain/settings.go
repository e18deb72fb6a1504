package domain

import "time"

// Settings represents the process-wide notification settings singleton.
// Lazily created with defaults on first read. The reminder engine fetches
// a snapshot once per run and passes it down explicitly.
type Settings struct {
	GlobalNotificationsEnabled bool
	DailyReminderHour          int // 0-23, local hour at which the scheduler fires the reminder run
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// IsValidReminderHour returns true for an hour-of-day value
func IsValidReminderHour(hour int) bool {
	return hour >= 0 && hour <= 23
}

// SettingsUpdate набор изменяемых полей настроек (nil - поле не меняется)
type SettingsUpdate struct {
	GlobalNotificationsEnabled *bool
	DailyReminderHour          *int
}
