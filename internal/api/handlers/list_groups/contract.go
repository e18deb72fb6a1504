package list_groups

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

type GroupService interface {
	List(ctx context.Context) (*models.GroupListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
