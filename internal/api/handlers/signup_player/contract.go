package signup_player

import (
	"context"

	signupPlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/signup_player"
)

type SignupPlayerUseCase interface {
	Execute(ctx context.Context, req *signupPlayer.Request) (*signupPlayer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
