package list_events

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
)

type EventService interface {
	ListUpcoming(ctx context.Context, groupID int64) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
