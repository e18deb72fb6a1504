package generate_tee_times

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error)
	AddTeeTimes(ctx context.Context, eventID int64, teeTimes []domain.TeeTime) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
