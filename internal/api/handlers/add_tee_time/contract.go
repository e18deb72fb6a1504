package add_tee_time

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
)

type EventService interface {
	AddTeeTime(ctx context.Context, groupID, eventID int64, req *models.AddTeeTimeRequest) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
