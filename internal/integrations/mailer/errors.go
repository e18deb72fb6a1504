package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда SMTP не сконфигурирован
	// Отправка деградирует в no-op и учитывается как ноль доставок
	ErrDisabled = errors.New("mailer: delivery disabled")

	// ErrSendFailed возвращается при ошибке доставки письма
	ErrSendFailed = errors.New("mailer: failed to send email")
)
