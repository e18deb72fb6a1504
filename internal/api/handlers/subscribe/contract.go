package subscribe

import (
	"context"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers/models"
)

type SubscriberService interface {
	Subscribe(ctx context.Context, groupID int64, req *models.SubscribeRequest) (*models.SubscriberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
