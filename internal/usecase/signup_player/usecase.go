package signup_player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
)

// UseCase use case записи игрока в слот
// Зачисление выполняется в сериализуемой транзакции с блокировкой строки
// слота (FOR UPDATE): конкурентные записи за последнее место проверяют
// вместимость по очереди, и ровно одна получает отказ
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

// Execute выполняет запись игрока в слот события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SignupPlayer: group=%d, event=%d, teeTime=%d",
		req.GroupID, req.EventID, req.TeeTimeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SignupPlayer: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что группа существует и активна
	if _, err := uc.groupRepo.GetActiveByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			uc.logger.Warn("SignupPlayer: group id=%d not found", req.GroupID)
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("SignupPlayer: failed to get group id=%d: %v", req.GroupID, err)
		return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
	}

	// 3. Получаем событие и проверяем принадлежность слота
	event, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("SignupPlayer: event id=%d not found in group=%d", req.EventID, req.GroupID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("SignupPlayer: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.FindTeeTime(req.TeeTimeID) == nil {
		uc.logger.Warn("SignupPlayer: tee time id=%d not found in event=%d", req.TeeTimeID, req.EventID)
		return nil, ErrTeeTimeNotFound
	}

	player := &domain.Player{
		TeeTimeID: req.TeeTimeID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
	}

	var admitted *domain.Player

	// 4. Записываем игрока в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем слот (FOR UPDATE внутри транзакции): конкурентные
		// записи за последнее место проверяют вместимость по очереди
		if _, err := uc.eventRepo.GetTeeTime(txCtx, req.EventID, req.TeeTimeID); err != nil {
			if errors.Is(err, eventRepo.ErrTeeTimeNotFound) {
				return ErrTeeTimeNotFound
			}
			return fmt.Errorf("%w: failed to lock tee time: %v", ErrInternal, err)
		}

		// 4.2. Условная вставка: место выдается только если текущее число
		// игроков меньше вместимости
		var err error
		admitted, err = uc.eventRepo.AdmitPlayer(txCtx, req.TeeTimeID, player)
		if err != nil {
			if errors.Is(err, eventRepo.ErrTeeTimeFull) {
				return ErrTeeTimeFull
			}
			return fmt.Errorf("%w: failed to admit player: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTeeTimeNotFound):
			uc.logger.Warn("SignupPlayer: tee time id=%d disappeared before admit", req.TeeTimeID)
			return nil, err
		case errors.Is(err, ErrTeeTimeFull):
			uc.logger.Warn("SignupPlayer: tee time id=%d is full", req.TeeTimeID)
			return nil, err
		default:
			uc.logger.Error("SignupPlayer: transaction failed for tee time id=%d: %v", req.TeeTimeID, err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	// 5. Перечитываем событие целиком: клиент получает актуальное
	// состояние всех слотов
	full, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		uc.logger.Error("SignupPlayer: failed to reload event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to reload event: %v", ErrInternal, err)
	}

	teeTime := full.FindTeeTime(req.TeeTimeID)
	if teeTime == nil {
		return nil, fmt.Errorf("%w: tee time id=%d missing after admit", ErrInternal, req.TeeTimeID)
	}

	uc.logger.Info("SignupPlayer: player id=%d admitted into tee time id=%d, remaining=%d",
		admitted.ID, req.TeeTimeID, teeTime.Remaining())

	return &Response{
		PlayerID:  admitted.ID,
		TeeTimeID: teeTime.ID,
		Remaining: teeTime.Remaining(),
		Event:     full,
	}, nil
}
