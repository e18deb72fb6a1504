package signup_player

import "github.com/m04kA/SMC-TeeTimeService/internal/domain"

// Request модель запроса на запись игрока в слот
type Request struct {
	GroupID   int64  // ID группы
	EventID   int64  // ID события
	TeeTimeID int64  // ID слота
	Name      string // Имя игрока
	Email     string // Email игрока
}

// Response модель ответа с записанным игроком и обновленным событием
type Response struct {
	PlayerID  int64         // ID созданной записи игрока
	TeeTimeID int64         // ID слота
	Remaining int           // Оставшиеся места после записи
	Event     *domain.Event // Событие со всеми слотами после записи
}
