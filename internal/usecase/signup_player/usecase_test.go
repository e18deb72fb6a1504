package signup_player

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

// fakeEventRepo имитирует условную вставку: место выдается, только если
// занято меньше, чем capacity. Вызовы внутри транзакции помечаются,
// чтобы проверить порядок блокировки и зачисления
type fakeEventRepo struct {
	event  *domain.Event
	nextID int64
	inTx   bool
	calls  []string
}

func (r *fakeEventRepo) record(name string) {
	if r.inTx {
		name += ":tx"
	}
	r.calls = append(r.calls, name)
}

func (r *fakeEventRepo) GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error) {
	r.record("GetByID")
	if r.event == nil || r.event.ID != eventID || r.event.GroupID != groupID {
		return nil, eventRepo.ErrEventNotFound
	}
	return r.event, nil
}

func (r *fakeEventRepo) GetTeeTime(ctx context.Context, eventID, teeTimeID int64) (*domain.TeeTime, error) {
	r.record("GetTeeTime")
	slot := r.event.FindTeeTime(teeTimeID)
	if slot == nil || r.event.ID != eventID {
		return nil, eventRepo.ErrTeeTimeNotFound
	}
	return slot, nil
}

func (r *fakeEventRepo) AdmitPlayer(ctx context.Context, teeTimeID int64, player *domain.Player) (*domain.Player, error) {
	r.record("AdmitPlayer")
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
	admitted.JoinedAt = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	slot.Players = append(slot.Players, admitted)
	return &admitted, nil
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

// fakeTxManager откатывает состояние репозитория при ошибке внутри транзакции
type fakeTxManager struct {
	repo *fakeEventRepo
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	saved := m.repo.snapshot()
	m.repo.inTx = true
	err := fn(ctx)
	m.repo.inTx = false
	if err != nil {
		m.repo.event = saved
		return err
	}
	return nil
}

func newFixture(capacity, occupied int) (*UseCase, *fakeEventRepo) {
	groups := &fakeGroupRepo{group: &domain.Group{ID: 1, IsActive: true}}
	events := &fakeEventRepo{
		event: &domain.Event{
			ID:      5,
			GroupID: 1,
			Type:    domain.EventTypeTeeTime,
			TeeTimes: []domain.TeeTime{
				{ID: 7, EventID: 5, Time: types.TimeString("07:00"), Capacity: capacity, Players: make([]domain.Player, occupied)},
			},
		},
		nextID: 200,
	}
	return NewUseCase(groups, events, &fakeTxManager{repo: events}, nopLogger{}), events
}

func validRequest() *Request {
	return &Request{
		GroupID:   1,
		EventID:   5,
		TeeTimeID: 7,
		Name:      "  Alice  ",
		Email:     "  Alice@Example.COM ",
	}
}

func TestExecute_AdmitsPlayer(t *testing.T) {
	uc, _ := newFixture(4, 1)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.PlayerID)
	assert.Equal(t, int64(7), resp.TeeTimeID)
	assert.Equal(t, 2, resp.Remaining)

	// Ответ содержит событие с актуальным состоянием слота,
	// имя и email нормализованы
	require.NotNil(t, resp.Event)
	slot := resp.Event.FindTeeTime(7)
	require.NotNil(t, slot)
	admitted := slot.FindPlayer(resp.PlayerID)
	require.NotNil(t, admitted)
	assert.Equal(t, "Alice", admitted.Name)
	assert.Equal(t, "alice@example.com", admitted.Email)
	assert.False(t, admitted.JoinedAt.IsZero())
}

func TestExecute_LocksSlotBeforeAdmit(t *testing.T) {
	uc, events := newFixture(4, 1)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Строка слота блокируется внутри транзакции до условной вставки:
	// без этой очередности две конкурентные записи видят одно и то же
	// число занятых мест и обе занимают последнее
	require.Contains(t, events.calls, "GetTeeTime:tx")
	require.Contains(t, events.calls, "AdmitPlayer:tx")
	lockIdx, admitIdx := -1, -1
	for i, call := range events.calls {
		switch call {
		case "GetTeeTime:tx":
			if lockIdx == -1 {
				lockIdx = i
			}
		case "AdmitPlayer:tx":
			admitIdx = i
		}
	}
	assert.Less(t, lockIdx, admitIdx)
}

func TestExecute_FullTeeTime(t *testing.T) {
	uc, events := newFixture(4, 4)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTeeTimeFull)

	// Транзакция откатилась, игрок не добавлен
	assert.Len(t, events.event.TeeTimes[0].Players, 4)
}

func TestExecute_LastSpot(t *testing.T) {
	uc, _ := newFixture(4, 3)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Remaining)
}

func TestExecute_GroupNotFound(t *testing.T) {
	_, events := newFixture(4, 0)
	uc := NewUseCase(&fakeGroupRepo{}, events, &fakeTxManager{repo: events}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestExecute_EventNotFound(t *testing.T) {
	uc, events := newFixture(4, 0)
	events.event.ID = 99

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_TeeTimeNotInEvent(t *testing.T) {
	uc, _ := newFixture(4, 0)

	req := validRequest()
	req.TeeTimeID = 42
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTeeTimeNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newFixture(4, 0)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing name", mutate: func(r *Request) { r.Name = "   " }},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }},
		{name: "email without at sign", mutate: func(r *Request) { r.Email = "alice.example.com" }},
		{name: "non-positive tee time id", mutate: func(r *Request) { r.TeeTimeID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
