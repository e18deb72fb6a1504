package move_player

import (
	"context"

	movePlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/move_player"
)

type MovePlayerUseCase interface {
	Execute(ctx context.Context, req *movePlayer.Request) (*movePlayer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
