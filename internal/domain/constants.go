package domain

// Default values
const (
	DefaultTemplate     = TemplateGolf
	DefaultEventType    = EventTypeTeeTime
	DefaultTeamSize     = 4
	DefaultStartType    = "straight"
	DefaultCapacity     = 4
	DefaultReminderHour = 17 // 5pm
)

// Business validation constants
const (
	MinCapacity = 1
	MaxCapacity = 100

	MinIntervalMinutes = 1
	MaxIntervalMinutes = 24 * 60

	MinGridCount = 1
	MaxGridCount = 200

	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

// ReminderWindowHours фиксированный горизонт поиска незаполненных слотов
const ReminderWindowHours = 48

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
