package move_player

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
	event  *domain.Event
	nextID int64
}

func (r *fakeEventRepo) snapshot() *domain.Event {
	cp := *r.event
	cp.TeeTimes = make([]domain.TeeTime, len(r.event.TeeTimes))
	for i := range r.event.TeeTimes {
		cp.TeeTimes[i] = r.event.TeeTimes[i]
		cp.TeeTimes[i].Players = append([]domain.Player(nil), r.event.TeeTimes[i].Players...)
	}
	return &cp
}

func (r *fakeEventRepo) GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error) {
	if r.event == nil || r.event.ID != eventID || r.event.GroupID != groupID {
		return nil, eventRepo.ErrEventNotFound
	}
	return r.event, nil
}

func (r *fakeEventRepo) GetTeeTime(ctx context.Context, eventID, teeTimeID int64) (*domain.TeeTime, error) {
	slot := r.event.FindTeeTime(teeTimeID)
	if slot == nil {
		return nil, eventRepo.ErrTeeTimeNotFound
	}
	return slot, nil
}

func (r *fakeEventRepo) GetPlayer(ctx context.Context, teeTimeID, playerID int64) (*domain.Player, error) {
	slot := r.event.FindTeeTime(teeTimeID)
	if slot == nil {
		return nil, eventRepo.ErrPlayerNotFound
	}
	player := slot.FindPlayer(playerID)
	if player == nil {
		return nil, eventRepo.ErrPlayerNotFound
	}
	return player, nil
}

func (r *fakeEventRepo) AdmitPlayer(ctx context.Context, teeTimeID int64, player *domain.Player) (*domain.Player, error) {
	slot := r.event.FindTeeTime(teeTimeID)
	if slot == nil {
		return nil, eventRepo.ErrTeeTimeNotFound
	}
	if slot.IsFull() {
		return nil, eventRepo.ErrTeeTimeFull
	}
	r.nextID++
	admitted := *player
	admitted.ID = r.nextID
	admitted.TeeTimeID = teeTimeID
	slot.Players = append(slot.Players, admitted)
	return &admitted, nil
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

// fakeTxManager откатывает состояние репозитория при ошибке внутри транзакции
type fakeTxManager struct {
	repo *fakeEventRepo
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	saved := m.repo.snapshot()
	if err := fn(ctx); err != nil {
		m.repo.event = saved
		return err
	}
	return nil
}

func newFixture(t *testing.T) (*UseCase, *fakeEventRepo) {
	t.Helper()

	joined := time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)
	events := &fakeEventRepo{
		event: &domain.Event{
			ID:      5,
			GroupID: 1,
			Type:    domain.EventTypeTeeTime,
			TeeTimes: []domain.TeeTime{
				{
					ID: 7, EventID: 5, Time: types.TimeString("07:00"), Capacity: 4,
					Players: []domain.Player{
						{ID: 100, TeeTimeID: 7, Name: "Alice", Email: "alice@example.com", JoinedAt: joined},
					},
				},
				{ID: 8, EventID: 5, Time: types.TimeString("07:09"), Capacity: 2},
			},
		},
		nextID: 500,
	}
	groups := &fakeGroupRepo{group: &domain.Group{ID: 1, IsActive: true}}
	uc := NewUseCase(groups, events, &fakeTxManager{repo: events}, nopLogger{})
	return uc, events
}

func validRequest() *Request {
	return &Request{
		GroupID:       1,
		EventID:       5,
		PlayerID:      100,
		FromTeeTimeID: 7,
		ToTeeTimeID:   8,
	}
}

func TestExecute_MovesPlayer(t *testing.T) {
	uc, events := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.FromTeeTimeID)
	assert.Equal(t, int64(8), resp.ToTeeTimeID)

	require.NotNil(t, resp.Event)
	dest := resp.Event.FindTeeTime(8)
	require.NotNil(t, dest)
	require.Len(t, dest.Players, 1)
	assert.Equal(t, "Alice", dest.Players[0].Name)
	assert.Equal(t, 1, dest.Remaining())

	// Исходное время записи сохраняется при переносе
	assert.Equal(t, time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC), dest.Players[0].JoinedAt)

	// Игрок ушел из исходного слота и появился в целевом
	assert.Empty(t, events.event.TeeTimes[0].Players)
	require.Len(t, events.event.TeeTimes[1].Players, 1)
	assert.Equal(t, "alice@example.com", events.event.TeeTimes[1].Players[0].Email)
}

func TestExecute_DestinationFull(t *testing.T) {
	uc, events := newFixture(t)
	events.event.TeeTimes[1].Players = []domain.Player{
		{ID: 101, TeeTimeID: 8}, {ID: 102, TeeTimeID: 8},
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDestinationFull)

	// Транзакция откатилась: игрок остался в исходном слоте
	require.Len(t, events.event.TeeTimes[0].Players, 1)
	assert.Equal(t, int64(100), events.event.TeeTimes[0].Players[0].ID)
	assert.Len(t, events.event.TeeTimes[1].Players, 2)
}

func TestExecute_PlayerNotInSource(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.PlayerID = 999
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestExecute_SlotNotInEvent(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.ToTeeTimeID = 42
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTeeTimeNotFound)
}

func TestExecute_GroupNotFound(t *testing.T) {
	_, events := newFixture(t)
	uc := NewUseCase(&fakeGroupRepo{}, events, &fakeTxManager{repo: events}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestExecute_SameSlotRejected(t *testing.T) {
	uc, _ := newFixture(t)

	req := validRequest()
	req.ToTeeTimeID = req.FromTeeTimeID
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
