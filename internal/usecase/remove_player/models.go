package remove_player

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Request модель запроса на удаление игрока из слота
type Request struct {
	GroupID   int64 // ID группы
	EventID   int64 // ID события
	TeeTimeID int64 // ID слота
	PlayerID  int64 // ID игрока
}

// Response модель ответа с обновленным событием
type Response struct {
	Event *domain.Event // Событие после удаления игрока
}
