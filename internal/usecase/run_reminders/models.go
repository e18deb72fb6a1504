package run_reminders

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Request модель запроса на запуск рассылки напоминаний
type Request struct {
	GroupID *int64 // Ограничить рассылку одной группой (опционально)
}

// EmptySlot незаполненный слот, попавший в письмо
type EmptySlot struct {
	EventID   int64            // ID события
	EventName string           // Название события
	EventDate time.Time        // Дата события
	Time      types.TimeString // Время слота
	Remaining int              // Свободные места
}

// GroupSummary итог рассылки по одной группе
type GroupSummary struct {
	GroupID           int64  // ID группы
	GroupName         string // Название группы
	Empties           int    // Сколько незаполненных слотов нашлось
	SentToSubscribers int    // Доставлено подписчикам
	SentToAdmins      int    // Доставлено администраторам
}

// Response модель ответа рассылки
// Skipped устанавливается, когда глобальные уведомления выключены
type Response struct {
	OK      bool
	Skipped bool
	Summary []GroupSummary
}
