package groups

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// GroupRepository интерфейс репозитория групп
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Group, error)
	GetActiveByAccessCode(ctx context.Context, accessCode string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	ExistsByAccessCode(ctx context.Context, accessCode string) (bool, error)
	SetAccessCode(ctx context.Context, id int64, accessCode string) error
	Update(ctx context.Context, id int64, update domain.GroupUpdate) (*domain.Group, error)
	Delete(ctx context.Context, id int64) error
}

// EventRepository интерфейс репозитория событий (для каскадного удаления)
type EventRepository interface {
	DeleteByGroupID(ctx context.Context, groupID int64) error
}

// SubscriberRepository интерфейс репозитория подписчиков (для каскадного удаления)
type SubscriberRepository interface {
	DeleteByGroupID(ctx context.Context, groupID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
