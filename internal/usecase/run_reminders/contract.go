package run_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// GroupRepository интерфейс репозитория групп
type GroupRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Group, error)
	ListActive(ctx context.Context) ([]*domain.Group, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	ListTeeTimeEventsInWindow(ctx context.Context, filter domain.EventsWindowFilter) ([]*domain.Event, error)
}

// SubscriberRepository интерфейс репозитория подписчиков
type SubscriberRepository interface {
	ListByGroup(ctx context.Context, groupID int64) ([]*domain.Subscriber, error)
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	Send(to, subject, htmlBody string) error
	FrameEmail(title, bodyHTML string) string
	UnsubscribeFooter(token string) string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
