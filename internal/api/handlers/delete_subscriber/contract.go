package delete_subscriber

import "context"

type SubscriberService interface {
	Delete(ctx context.Context, groupID, subscriberID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
