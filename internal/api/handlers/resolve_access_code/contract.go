package resolve_access_code

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

type GroupService interface {
	ResolveAccessCode(ctx context.Context, accessCode string) (*models.ResolveAccessCodeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
