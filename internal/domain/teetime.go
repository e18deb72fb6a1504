package domain

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// TeeTime represents a capacity-bounded sign-up slot within an event.
// The occupant list is ordered by join time; the count never exceeds
// Capacity at admission time (enforced by a conditional write in storage,
// see the event repository). Lowering capacity below the current occupant
// count is allowed and is not retroactively corrected.
type TeeTime struct {
	ID        int64
	EventID   int64
	Time      types.TimeString
	Capacity  int
	Position  int
	Players   []Player
	CreatedAt time.Time
}

// IsFull returns true if the slot has no remaining spots
func (t *TeeTime) IsFull() bool {
	return len(t.Players) >= t.Capacity
}

// Remaining returns the number of open spots (never negative)
func (t *TeeTime) Remaining() int {
	remaining := t.Capacity - len(t.Players)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FindPlayer returns the occupant with the given ID, or nil if absent
func (t *TeeTime) FindPlayer(playerID int64) *Player {
	for i := range t.Players {
		if t.Players[i].ID == playerID {
			return &t.Players[i]
		}
	}
	return nil
}

// Player represents a person registered into a tee time.
// JoinedAt is the original sign-up timestamp and survives moves between slots.
type Player struct {
	ID        int64
	TeeTimeID int64
	Name      string
	Email     string
	JoinedAt  time.Time
}
