package remove_player

import (
	"context"

	removePlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/remove_player"
)

type RemovePlayerUseCase interface {
	Execute(ctx context.Context, req *removePlayer.Request) (*removePlayer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
