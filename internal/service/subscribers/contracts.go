package subscribers

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// GroupRepository интерфейс репозитория групп
type GroupRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Group, error)
}

// SubscriberRepository интерфейс репозитория подписчиков
type SubscriberRepository interface {
	Upsert(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.Subscriber, error)
	Delete(ctx context.Context, groupID, subscriberID int64) error
	DeleteByToken(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
