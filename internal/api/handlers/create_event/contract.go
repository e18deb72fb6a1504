package create_event

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
)

type EventService interface {
	Create(ctx context.Context, groupID int64, req *models.CreateEventRequest) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
