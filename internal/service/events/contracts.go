package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// GroupRepository интерфейс репозитория групп
type GroupRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Group, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error)
	ListUpcomingByGroup(ctx context.Context, groupID int64, from time.Time) ([]*domain.Event, error)
	Update(ctx context.Context, groupID, eventID int64, update domain.EventUpdate) error
	Delete(ctx context.Context, groupID, eventID int64) error
	AddTeeTimes(ctx context.Context, eventID int64, teeTimes []domain.TeeTime) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
