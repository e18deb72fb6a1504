package list_subscribers

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers/models"
)

type SubscriberService interface {
	List(ctx context.Context, groupID int64) (*models.SubscriberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
