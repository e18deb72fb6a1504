package move_player

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
)

// UseCase use case переноса игрока между слотами одного события
// Удаление из исходного слота и зачисление в целевой выполняются в одной
// сериализуемой транзакции: при нехватке мест в целевом слоте транзакция
// откатывается и игрок остается в исходном слоте
type UseCase struct {
	groupRepo GroupRepository
	eventRepo EventRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	groupRepo GroupRepository,
	eventRepo EventRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		groupRepo: groupRepo,
		eventRepo: eventRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет перенос игрока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MovePlayer: group=%d, event=%d, player=%d, from=%d, to=%d",
		req.GroupID, req.EventID, req.PlayerID, req.FromTeeTimeID, req.ToTeeTimeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MovePlayer: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что группа существует и активна
	if _, err := uc.groupRepo.GetActiveByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			uc.logger.Warn("MovePlayer: group id=%d not found", req.GroupID)
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("MovePlayer: failed to get group id=%d: %v", req.GroupID, err)
		return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
	}

	// 3. Получаем событие и проверяем принадлежность обоих слотов
	event, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("MovePlayer: event id=%d not found in group=%d", req.EventID, req.GroupID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("MovePlayer: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.FindTeeTime(req.FromTeeTimeID) == nil || event.FindTeeTime(req.ToTeeTimeID) == nil {
		uc.logger.Warn("MovePlayer: tee time from=%d or to=%d not found in event=%d",
			req.FromTeeTimeID, req.ToTeeTimeID, req.EventID)
		return nil, ErrTeeTimeNotFound
	}

	var moved *domain.Player

	// 4. Переносим игрока в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем оба слота (FOR UPDATE внутри транзакции)
		if _, err := uc.eventRepo.GetTeeTime(txCtx, req.EventID, req.FromTeeTimeID); err != nil {
			if errors.Is(err, eventRepo.ErrTeeTimeNotFound) {
				return ErrTeeTimeNotFound
			}
			return fmt.Errorf("%w: failed to lock source tee time: %v", ErrInternal, err)
		}
		if _, err := uc.eventRepo.GetTeeTime(txCtx, req.EventID, req.ToTeeTimeID); err != nil {
			if errors.Is(err, eventRepo.ErrTeeTimeNotFound) {
				return ErrTeeTimeNotFound
			}
			return fmt.Errorf("%w: failed to lock destination tee time: %v", ErrInternal, err)
		}

		// 4.2. Находим игрока в исходном слоте
		player, err := uc.eventRepo.GetPlayer(txCtx, req.FromTeeTimeID, req.PlayerID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrPlayerNotFound) {
				return ErrPlayerNotFound
			}
			return fmt.Errorf("%w: failed to get player: %v", ErrInternal, err)
		}

		// 4.3. Зачисляем в целевой слот, сохраняя исходное время записи
		moved, err = uc.eventRepo.AdmitPlayer(txCtx, req.ToTeeTimeID, player)
		if err != nil {
			if errors.Is(err, eventRepo.ErrTeeTimeFull) {
				return ErrDestinationFull
			}
			return fmt.Errorf("%w: failed to admit player into destination: %v", ErrInternal, err)
		}

		// 4.4. Убираем из исходного слота
		if err := uc.eventRepo.RemovePlayer(txCtx, req.FromTeeTimeID, req.PlayerID); err != nil {
			return fmt.Errorf("%w: failed to remove player from source: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTeeTimeNotFound),
			errors.Is(err, ErrPlayerNotFound),
			errors.Is(err, ErrDestinationFull):
			uc.logger.Warn("MovePlayer: move rejected: %v", err)
			return nil, err
		default:
			uc.logger.Error("MovePlayer: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	// 5. Перечитываем событие целиком для ответа
	full, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		uc.logger.Error("MovePlayer: failed to reload event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to reload event: %v", ErrInternal, err)
	}

	uc.logger.Info("MovePlayer: player id=%d moved from tee time=%d to tee time=%d",
		req.PlayerID, req.FromTeeTimeID, req.ToTeeTimeID)

	return &Response{
		PlayerID:      moved.ID,
		FromTeeTimeID: req.FromTeeTimeID,
		ToTeeTimeID:   req.ToTeeTimeID,
		Event:         full,
	}, nil
}
