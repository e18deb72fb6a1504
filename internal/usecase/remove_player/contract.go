package remove_player

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// GroupRepository интерфейс репозитория групп
type GroupRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Group, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error)
	RemovePlayer(ctx context.Context, teeTimeID, playerID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
