package generate_tee_times

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Request модель запроса на генерацию сетки слотов
type Request struct {
	GroupID         int64  // ID группы
	EventID         int64  // ID события
	StartTime       string // Время первого слота, "HH:MM"
	IntervalMinutes int    // Шаг между слотами в минутах
	Count           int    // Количество слотов
	Capacity        *int   // Вместимость каждого слота (опционально)
}

// GeneratedTeeTime слот сетки в ответе
type GeneratedTeeTime struct {
	ID       int64            // ID созданного слота
	Time     types.TimeString // Время слота
	Capacity int              // Вместимость
	Position int              // Позиция в событии
}

// Response модель ответа со списком созданных слотов
type Response struct {
	EventID  int64              // ID события
	Added    int                // Количество добавленных слотов
	TeeTimes []GeneratedTeeTime // Созданные слоты в порядке позиций
	Event    *domain.Event      // Событие после добавления сетки
}
