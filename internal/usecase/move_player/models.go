package move_player

import (
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Request модель запроса на перенос игрока между слотами
type Request struct {
	GroupID       int64 // ID группы
	EventID       int64 // ID события
	FromTeeTimeID int64 // ID исходного слота
	ToTeeTimeID   int64 // ID целевого слота
	PlayerID      int64 // ID игрока в исходном слоте
}

// Response модель ответа с обновленным событием
type Response struct {
	PlayerID      int64         // Новый ID записи игрока в целевом слоте
	FromTeeTimeID int64         // ID исходного слота
	ToTeeTimeID   int64         // ID целевого слота
	Event         *domain.Event // Событие после переноса
}
