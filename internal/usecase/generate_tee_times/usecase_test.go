package generate_tee_times

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeEventRepo стейтфул-заглушка: AddTeeTimes присваивает ID и дописывает
// слоты в событие, как это делает настоящий репозиторий
type fakeEventRepo struct {
	event  *domain.Event
	nextID int64
}

func (r *fakeEventRepo) GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error) {
	if r.event == nil || r.event.ID != eventID || r.event.GroupID != groupID {
		return nil, eventRepo.ErrEventNotFound
	}
	cp := *r.event
	cp.TeeTimes = append([]domain.TeeTime(nil), r.event.TeeTimes...)
	return &cp, nil
}

func (r *fakeEventRepo) AddTeeTimes(ctx context.Context, eventID int64, teeTimes []domain.TeeTime) error {
	for _, tt := range teeTimes {
		r.nextID++
		tt.ID = r.nextID
		tt.EventID = eventID
		r.event.TeeTimes = append(r.event.TeeTimes, tt)
	}
	return nil
}

func newTeeTimeEvent(slots ...domain.TeeTime) *fakeEventRepo {
	return &fakeEventRepo{
		event: &domain.Event{
			ID:       5,
			GroupID:  1,
			Type:     domain.EventTypeTeeTime,
			TeeTimes: slots,
		},
		nextID: 100,
	}
}

func TestExecute_GeneratesGrid(t *testing.T) {
	repo := newTeeTimeEvent()
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "07:00",
		IntervalMinutes: 9,
		Count:           3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.EventID)
	assert.Equal(t, 3, resp.Added)
	require.Len(t, resp.TeeTimes, 3)

	labels := make([]string, 0, len(resp.TeeTimes))
	for _, tt := range resp.TeeTimes {
		labels = append(labels, tt.Time.String())
	}
	assert.Equal(t, []string{"07:00", "07:09", "07:18"}, labels)

	assert.Equal(t, 0, resp.TeeTimes[0].Position)
	assert.Equal(t, 2, resp.TeeTimes[2].Position)
	for _, tt := range resp.TeeTimes {
		assert.Equal(t, domain.DefaultCapacity, tt.Capacity)
		assert.NotZero(t, tt.ID)
	}
}

func TestExecute_WrapsPastMidnight(t *testing.T) {
	repo := newTeeTimeEvent()
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "23:50",
		IntervalMinutes: 30,
		Count:           3,
	})
	require.NoError(t, err)

	labels := make([]string, 0, len(resp.TeeTimes))
	for _, tt := range resp.TeeTimes {
		labels = append(labels, tt.Time.String())
	}
	assert.Equal(t, []string{"23:50", "00:20", "00:50"}, labels)
}

func TestExecute_ContinuesPositions(t *testing.T) {
	repo := newTeeTimeEvent(
		domain.TeeTime{ID: 1, Time: types.TimeString("07:00"), Capacity: 4, Position: 0},
		domain.TeeTime{ID: 2, Time: types.TimeString("07:09"), Capacity: 4, Position: 1},
	)
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "08:00",
		IntervalMinutes: 10,
		Count:           2,
	})
	require.NoError(t, err)

	// Ответ содержит только новые слоты, нумерация продолжается
	require.Len(t, resp.TeeTimes, 2)
	assert.Equal(t, 2, resp.TeeTimes[0].Position)
	assert.Equal(t, 3, resp.TeeTimes[1].Position)
}

func TestExecute_CustomCapacity(t *testing.T) {
	repo := newTeeTimeEvent()
	uc := NewUseCase(repo, nopLogger{})

	capacity := 2
	resp, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "09:00",
		IntervalMinutes: 15,
		Count:           1,
		Capacity:        &capacity,
	})
	require.NoError(t, err)
	require.Len(t, resp.TeeTimes, 1)
	assert.Equal(t, 2, resp.TeeTimes[0].Capacity)
}

func TestExecute_EventNotFound(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "07:00",
		IntervalMinutes: 9,
		Count:           1,
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_NotTeeTimeEvent(t *testing.T) {
	repo := newTeeTimeEvent()
	repo.event.Type = domain.EventTypeTeam
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		GroupID:         1,
		EventID:         5,
		StartTime:       "07:00",
		IntervalMinutes: 9,
		Count:           1,
	})
	assert.ErrorIs(t, err, ErrNotTeeTimeEvent)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeEventRepo{}, nopLogger{})
	badCapacity := 0

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "bad start time", req: &Request{GroupID: 1, EventID: 5, StartTime: "7am", IntervalMinutes: 9, Count: 3}},
		{name: "zero interval", req: &Request{GroupID: 1, EventID: 5, StartTime: "07:00", IntervalMinutes: 0, Count: 3}},
		{name: "zero count", req: &Request{GroupID: 1, EventID: 5, StartTime: "07:00", IntervalMinutes: 9, Count: 0}},
		{name: "count over limit", req: &Request{GroupID: 1, EventID: 5, StartTime: "07:00", IntervalMinutes: 9, Count: domain.MaxGridCount + 1}},
		{name: "capacity below minimum", req: &Request{GroupID: 1, EventID: 5, StartTime: "07:00", IntervalMinutes: 9, Count: 3, Capacity: &badCapacity}},
		{name: "non-positive group id", req: &Request{GroupID: 0, EventID: 5, StartTime: "07:00", IntervalMinutes: 9, Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
