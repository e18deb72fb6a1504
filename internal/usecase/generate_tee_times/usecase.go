package generate_tee_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// UseCase use case генерации сетки слотов для события
// Слоты добавляются к уже существующим: позиции продолжают текущую
// нумерацию события, время после полуночи переносится на начало суток
type UseCase struct {
	eventRepo EventRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(eventRepo EventRepository, logger Logger) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Execute выполняет генерацию сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateTeeTimes: group=%d, event=%d, start=%s, interval=%d, count=%d",
		req.GroupID, req.EventID, req.StartTime, req.IntervalMinutes, req.Count)

	// 1. Валидация входных данных
	startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GenerateTeeTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем событие
	event, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("GenerateTeeTimes: event id=%d not found in group=%d", req.EventID, req.GroupID)
			return nil, ErrEventNotFound
		}
		uc.logger.Error("GenerateTeeTimes: failed to get event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 3. Сетка имеет смысл только для событий со слотами
	if !event.IsTeeTimeEvent() {
		uc.logger.Warn("GenerateTeeTimes: event id=%d does not use tee times", req.EventID)
		return nil, ErrNotTeeTimeEvent
	}

	capacity := domain.DefaultCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	// 4. Строим сетку: каждый следующий слот на intervalMinutes позже,
	// позиции продолжают нумерацию существующих слотов события
	startMinutes, err := startTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	basePosition := len(event.TeeTimes)
	teeTimes := make([]domain.TeeTime, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		teeTimes = append(teeTimes, domain.TeeTime{
			Time:     types.NewTimeStringFromMinutes(startMinutes + i*req.IntervalMinutes),
			Capacity: capacity,
			Position: basePosition + i,
		})
	}

	// 5. Вставляем всю сетку одним запросом
	if err := uc.eventRepo.AddTeeTimes(ctx, req.EventID, teeTimes); err != nil {
		uc.logger.Error("GenerateTeeTimes: failed to insert tee times for event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to insert tee times: %v", ErrInternal, err)
	}

	// 6. Перечитываем событие, чтобы вернуть слоты с присвоенными ID
	full, err := uc.eventRepo.GetByID(ctx, req.GroupID, req.EventID)
	if err != nil {
		uc.logger.Error("GenerateTeeTimes: failed to reload event id=%d: %v", req.EventID, err)
		return nil, fmt.Errorf("%w: failed to reload event: %v", ErrInternal, err)
	}

	resp := &Response{
		EventID:  req.EventID,
		Added:    req.Count,
		TeeTimes: make([]GeneratedTeeTime, 0, len(full.TeeTimes)),
		Event:    full,
	}
	for i := range full.TeeTimes {
		tt := &full.TeeTimes[i]
		if tt.Position < basePosition {
			continue
		}
		resp.TeeTimes = append(resp.TeeTimes, GeneratedTeeTime{
			ID:       tt.ID,
			Time:     tt.Time,
			Capacity: tt.Capacity,
			Position: tt.Position,
		})
	}

	uc.logger.Info("GenerateTeeTimes: added %d tee times to event id=%d", req.Count, req.EventID)
	return resp, nil
}
