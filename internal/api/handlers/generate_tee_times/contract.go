package generate_tee_times

import (
	"context"

	generateTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/generate_tee_times"
)

type GenerateTeeTimesUseCase interface {
	Execute(ctx context.Context, req *generateTeeTimes.Request) (*generateTeeTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
