package remove_player

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
)

// UseCase use case удаления игрока из слота
type UseCase struct {
	groupRepo GroupRepository
	eventRepo EventRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	groupRepo GroupRepository,
	eventRepo EventRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		groupRepo: groupRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Execute выполняет удаление игрока из слота события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RemovePlayer: group=%d, event=%d, teeTime=%d, player=%d",
		req.GroupID, req.EventID, req.TeeTimeID, req.PlayerID)

	// 1. Валидация входных данных
	if req.GroupID <= 0 || req.EventID <= 0 || req.TeeTimeID <= 0 || req.PlayerID <= 0 {
		uc.logger.Warn("RemovePlayer: non-positive identifier in request")
		return nil, fmt.Errorf("%w: identifiers must be positive", ErrInvalidInput)
	}

	// 2. Проверяем, что группа существует и активна
	if _, err := uc.groupRepo.GetActiveByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			uc.logger.Warn("RemovePlayer: group id=%d not found", req.GroupID)
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("RemovePlayer: failed to get group id=%d: %v", req.GroupID, err)
		return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
	}

	// 3. Получаем событие и проверяем принадлежность слота
	event, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("RemovePlayer: event id=%d not found in group=%d", req.EventID, req.GroupID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("RemovePlayer: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.FindTeeTime(req.TeeTimeID) == nil {
		uc.logger.Warn("RemovePlayer: tee time id=%d not found in event=%d", req.TeeTimeID, req.EventID)
		return nil, ErrTeeTimeNotFound
	}

	// 4. Удаляем игрока
	if err := uc.eventRepo.RemovePlayer(ctx, req.TeeTimeID, req.PlayerID); err != nil {
		if errors.Is(err, eventRepo.ErrPlayerNotFound) {
			uc.logger.Warn("RemovePlayer: player id=%d not found in tee time=%d", req.PlayerID, req.TeeTimeID)
			return nil, ErrPlayerNotFound
		}
		uc.logger.Error("RemovePlayer: failed to remove player id=%d: %v", req.PlayerID, err)
		return nil, fmt.Errorf("%w: failed to remove player: %v", ErrInternal, err)
	}

	// 5. Перечитываем событие целиком для ответа
	full, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		uc.logger.Error("RemovePlayer: failed to reload event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to reload event: %v", ErrInternal, err)
	}

	uc.logger.Info("RemovePlayer: player id=%d removed from tee time=%d", req.PlayerID, req.TeeTimeID)
	return &Response{Event: full}, nil
}
