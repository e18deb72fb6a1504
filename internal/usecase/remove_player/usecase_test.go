package remove_player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeGroupRepo struct {
	group *domain.Group
}

func (r *fakeGroupRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Group, error) {
	if r.group == nil || r.group.ID != id {
		return nil, groupRepo.ErrGroupNotFound
	}
	return r.group, nil
}

type fakeEventRepo struct {
	event *domain.Event
}

func (r *fakeEventRepo) GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error) {
	if r.event == nil || r.event.ID != eventID || r.event.GroupID != groupID {
		return nil, eventRepo.ErrEventNotFound
	}
	return r.event, nil
}

func (r *fakeEventRepo) RemovePlayer(ctx context.Context, teeTimeID, playerID int64) error {
	slot := r.event.FindTeeTime(teeTimeID)
	if slot == nil {
		return eventRepo.ErrTeeTimeNotFound
	}
	for i := range slot.Players {
		if slot.Players[i].ID == playerID {
			slot.Players = append(slot.Players[:i], slot.Players[i+1:]...)
			return nil
		}
	}
	return eventRepo.ErrPlayerNotFound
}

func newFixture(t *testing.T) (*UseCase, *fakeEventRepo) {
	t.Helper()

	events := &fakeEventRepo{
		event: &domain.Event{
			ID:      5,
			GroupID: 1,
			Type:    domain.EventTypeTeeTime,
			TeeTimes: []domain.TeeTime{
				{
					ID: 7, EventID: 5, Time: types.TimeString("07:00"), Capacity: 4,
					Players: []domain.Player{
						{ID: 100, TeeTimeID: 7, Name: "Alice", Email: "alice@example.com",
							JoinedAt: time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)},
						{ID: 101, TeeTimeID: 7, Name: "Bob", Email: "bob@example.com"},
					},
				},
			},
		},
	}
	groups := &fakeGroupRepo{group: &domain.Group{ID: 1, IsActive: true}}
	return NewUseCase(groups, events, nopLogger{}), events
}

func TestExecute_RemovesPlayer(t *testing.T) {
	uc, events := newFixture(t)

	resp, err := uc.Execute(context.Background(), &Request{
		GroupID: 1, EventID: 5, TeeTimeID: 7, PlayerID: 100,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Event)
	slot := resp.Event.FindTeeTime(7)
	require.NotNil(t, slot)
	require.Len(t, slot.Players, 1)
	assert.Equal(t, "Bob", slot.Players[0].Name)
	assert.Len(t, events.event.TeeTimes[0].Players, 1)
}

func TestExecute_PlayerNotFound(t *testing.T) {
	uc, events := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		GroupID: 1, EventID: 5, TeeTimeID: 7, PlayerID: 999,
	})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Len(t, events.event.TeeTimes[0].Players, 2)
}

func TestExecute_TeeTimeNotInEvent(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		GroupID: 1, EventID: 5, TeeTimeID: 99, PlayerID: 100,
	})
	assert.ErrorIs(t, err, ErrTeeTimeNotFound)
}

func TestExecute_GroupNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		GroupID: 2, EventID: 5, TeeTimeID: 7, PlayerID: 100,
	})
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestExecute_EventNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		GroupID: 1, EventID: 6, TeeTimeID: 7, PlayerID: 100,
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newFixture(t)

	for _, req := range []*Request{
		{GroupID: 0, EventID: 5, TeeTimeID: 7, PlayerID: 100},
		{GroupID: 1, EventID: 0, TeeTimeID: 7, PlayerID: 100},
		{GroupID: 1, EventID: 5, TeeTimeID: 0, PlayerID: 100},
		{GroupID: 1, EventID: 5, TeeTimeID: 7, PlayerID: -1},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
