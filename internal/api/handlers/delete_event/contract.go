package delete_event

import "context"

type EventService interface {
	Delete(ctx context.Context, groupID, eventID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
