package domain

import "time"

// Subscriber represents a reminder-email recipient of a group.
// Unique per (group, email); the unsubscribe token is the sole
// deletion credential, no group or email is needed to unsubscribe.
type Subscriber struct {
	ID               int64
	GroupID          int64
	Email            string
	Name             *string
	UnsubscribeToken string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
