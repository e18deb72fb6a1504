package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	eventRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/event"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Service сервис для работы с событиями и их слотами
type Service struct {
	groupRepo    GroupRepository
	eventRepo    EventRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(
	groupRepo GroupRepository,
	eventRepo EventRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		groupRepo:    groupRepo,
		eventRepo:    eventRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create создает событие группы вместе с переданными слотами
// Событие и слоты вставляются в одной транзакции
func (s *Service) Create(ctx context.Context, groupID int64, req *models.CreateEventRequest) (*models.EventResponse, error) {
	if _, err := s.getActiveGroup(ctx, groupID, "Create"); err != nil {
		return nil, err
	}

	event, err := s.buildEvent(groupID, req)
	if err != nil {
		s.logger.Warn("Create: invalid event payload for group=%d: %v", groupID, err)
		return nil, err
	}

	teeTimes, err := buildTeeTimes(req.TeeTimes)
	if err != nil {
		s.logger.Warn("Create: invalid tee times for group=%d: %v", groupID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.eventRepo.Create(ctx, event)
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		if err := s.eventRepo.AddTeeTimes(ctx, created.ID, teeTimes); err != nil {
			return fmt.Errorf("create tee times: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Create: transaction failed for group=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: Create - transaction failed: %v", ErrInternal, err)
	}

	// Перечитываем событие, чтобы вернуть слоты с ID и таймстемпами
	full, err := s.eventRepo.GetByID(ctx, groupID, event.ID)
	if err != nil {
		s.logger.Error("Create: failed to reload event id=%d: %v", event.ID, err)
		return nil, fmt.Errorf("%w: Create - reload event: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created event id=%d for group=%d with %d tee times", event.ID, groupID, len(teeTimes))
	return models.FromDomainEvent(full), nil
}

// ListUpcoming возвращает события группы начиная с сегодняшнего дня,
// отсортированные по дате по возрастанию
func (s *Service) ListUpcoming(ctx context.Context, groupID int64) (*models.EventListResponse, error) {
	if _, err := s.getActiveGroup(ctx, groupID, "ListUpcoming"); err != nil {
		return nil, err
	}

	// События сегодняшней даты еще считаются предстоящими
	now := s.timeProvider.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	eventList, err := s.eventRepo.ListUpcomingByGroup(ctx, groupID, startOfDay)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error for group=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d events for group=%d", len(eventList), groupID)
	return models.FromDomainEvents(eventList), nil
}

// GetByID возвращает событие группы вместе со слотами и игроками
func (s *Service) GetByID(ctx context.Context, groupID, eventID int64) (*models.EventResponse, error) {
	if _, err := s.getActiveGroup(ctx, groupID, "GetByID"); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, groupID, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found in group=%d", eventID, groupID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// Update обновляет поля события
// Слоты через этот метод не меняются
func (s *Service) Update(ctx context.Context, groupID, eventID int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	if req.Type != nil && !domain.IsValidEventType(domain.EventType(*req.Type)) {
		s.logger.Warn("Update: invalid event type=%s", *req.Type)
		return nil, fmt.Errorf("%w: invalid event type", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if req.TeamSize != nil && *req.TeamSize < 1 {
		return nil, fmt.Errorf("%w: teamSize must be positive", ErrInvalidInput)
	}

	if err := s.eventRepo.Update(ctx, groupID, eventID, req.ToDomainUpdate()); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Update: event id=%d not found in group=%d", eventID, groupID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	event, err := s.eventRepo.GetByID(ctx, groupID, eventID)
	if err != nil {
		s.logger.Error("Update: failed to reload event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: Update - reload event: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated event id=%d in group=%d", eventID, groupID)
	return models.FromDomainEvent(event), nil
}

// Delete удаляет событие вместе со слотами и игроками
func (s *Service) Delete(ctx context.Context, groupID, eventID int64) error {
	if err := s.eventRepo.Delete(ctx, groupID, eventID); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found in group=%d", eventID, groupID)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", eventID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted event id=%d from group=%d", eventID, groupID)
	return nil
}

// AddTeeTime добавляет один слот к событию
// Позиция нового слота продолжает существующую нумерацию
func (s *Service) AddTeeTime(ctx context.Context, groupID, eventID int64, req *models.AddTeeTimeRequest) (*models.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, groupID, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("AddTeeTime: event id=%d not found in group=%d", eventID, groupID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("AddTeeTime: repository error for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: AddTeeTime - repository error: %v", ErrInternal, err)
	}

	if !event.IsTeeTimeEvent() {
		s.logger.Warn("AddTeeTime: event id=%d does not use tee times", eventID)
		return nil, ErrNotTeeTimeEvent
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("AddTeeTime: invalid time=%q for event id=%d", req.Time, eventID)
		return nil, fmt.Errorf("%w: invalid time, expected HH:MM", ErrInvalidInput)
	}

	capacity := domain.DefaultCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		s.logger.Warn("AddTeeTime: invalid capacity=%d for event id=%d", capacity, eventID)
		return nil, fmt.Errorf("%w: capacity out of range", ErrInvalidInput)
	}

	teeTime := domain.TeeTime{
		Time:     startTime,
		Capacity: capacity,
		Position: len(event.TeeTimes),
	}
	if err := s.eventRepo.AddTeeTimes(ctx, eventID, []domain.TeeTime{teeTime}); err != nil {
		s.logger.Error("AddTeeTime: failed to insert tee time for event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: AddTeeTime - insert tee time: %v", ErrInternal, err)
	}

	full, err := s.eventRepo.GetByID(ctx, groupID, eventID)
	if err != nil {
		s.logger.Error("AddTeeTime: failed to reload event id=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: AddTeeTime - reload event: %v", ErrInternal, err)
	}

	s.logger.Info("AddTeeTime: added tee time %s to event id=%d", startTime, eventID)
	return models.FromDomainEvent(full), nil
}

// getActiveGroup проверяет, что группа существует и активна
func (s *Service) getActiveGroup(ctx context.Context, groupID int64, op string) (*domain.Group, error) {
	group, err := s.groupRepo.GetActiveByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("%s: group id=%d not found", op, groupID)
			return nil, ErrGroupNotFound
		}
		s.logger.Error("%s: group repository error for id=%d: %v", op, groupID, err)
		return nil, fmt.Errorf("%w: %s - group repository error: %v", ErrInternal, op, err)
	}
	return group, nil
}

// buildEvent валидирует запрос и собирает domain.Event с дефолтами
func (s *Service) buildEvent(groupID int64, req *models.CreateEventRequest) (*domain.Event, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date required", ErrInvalidInput)
	}

	eventType := domain.DefaultEventType
	if req.Type != nil {
		eventType = domain.EventType(*req.Type)
		if !domain.IsValidEventType(eventType) {
			return nil, fmt.Errorf("%w: invalid event type", ErrInvalidInput)
		}
	}

	teamSize := domain.DefaultTeamSize
	if req.TeamSize != nil {
		teamSize = *req.TeamSize
		if teamSize < 1 {
			return nil, fmt.Errorf("%w: teamSize must be positive", ErrInvalidInput)
		}
	}

	startType := domain.DefaultStartType
	if req.StartType != nil {
		startType = *req.StartType
	}

	return &domain.Event{
		GroupID:     groupID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Date:        req.Date,
		Type:        eventType,
		TeamSize:    teamSize,
		StartType:   startType,
	}, nil
}

// buildTeeTimes валидирует вложенные слоты и нумерует их по порядку запроса
func buildTeeTimes(inputs []models.TeeTimeInput) ([]domain.TeeTime, error) {
	teeTimes := make([]domain.TeeTime, 0, len(inputs))
	for i, in := range inputs {
		startTime, err := types.NewTimeStringFromString(in.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: teeTimes[%d]: invalid time, expected HH:MM", ErrInvalidInput, i)
		}

		capacity := domain.DefaultCapacity
		if in.Capacity != nil {
			capacity = *in.Capacity
		}
		if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
			return nil, fmt.Errorf("%w: teeTimes[%d]: capacity out of range", ErrInvalidInput, i)
		}

		teeTimes = append(teeTimes, domain.TeeTime{
			Time:     startTime,
			Capacity: capacity,
			Position: i,
		})
	}
	return teeTimes, nil
}
