package move_player

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
	GetTeeTime(ctx context.Context, eventID, teeTimeID int64) (*domain.TeeTime, error)
	GetPlayer(ctx context.Context, teeTimeID, playerID int64) (*domain.Player, error)
	AdmitPlayer(ctx context.Context, teeTimeID int64, player *domain.Player) (*domain.Player, error)
	RemovePlayer(ctx context.Context, teeTimeID, playerID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
