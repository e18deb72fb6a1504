package subscribers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	subscriberRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/subscriber"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers/models"
)

// Service сервис для работы с подписчиками напоминаний
type Service struct {
	groupRepo      GroupRepository
	subscriberRepo SubscriberRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса подписчиков
func NewService(
	groupRepo GroupRepository,
	subscriberRepo SubscriberRepository,
	logger Logger,
) *Service {
	return &Service{
		groupRepo:      groupRepo,
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

// Subscribe подписывает адрес на напоминания группы
// Повторная подписка того же адреса обновляет имя и выдает новый токен отписки
func (s *Service) Subscribe(ctx context.Context, groupID int64, req *models.SubscribeRequest) (*models.SubscriberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		s.logger.Warn("Subscribe: empty email for group=%d", groupID)
		return nil, fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		s.logger.Warn("Subscribe: malformed email for group=%d", groupID)
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if _, err := s.groupRepo.GetActiveByID(ctx, groupID); err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("Subscribe: group id=%d not found", groupID)
			return nil, ErrGroupNotFound
		}
		s.logger.Error("Subscribe: group repository error for id=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: Subscribe - group repository error: %v", ErrInternal, err)
	}

	sub := &domain.Subscriber{
		GroupID:          groupID,
		Email:            email,
		Name:             req.Name,
		UnsubscribeToken: uuid.NewString(),
	}

	saved, err := s.subscriberRepo.Upsert(ctx, sub)
	if err != nil {
		s.logger.Error("Subscribe: repository error for group=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: subscriber id=%d saved for group=%d", saved.ID, groupID)
	return models.FromDomainSubscriber(saved), nil
}

// List возвращает подписчиков группы, свежие первыми
func (s *Service) List(ctx context.Context, groupID int64) (*models.SubscriberListResponse, error) {
	subs, err := s.subscriberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("List: repository error for group=%d: %v", groupID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d subscribers for group=%d", len(subs), groupID)
	return models.FromDomainSubscribers(subs), nil
}

// Delete удаляет подписчика группы
func (s *Service) Delete(ctx context.Context, groupID, subscriberID int64) error {
	if err := s.subscriberRepo.Delete(ctx, groupID, subscriberID); err != nil {
		if errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
			s.logger.Warn("Delete: subscriber id=%d not found in group=%d", subscriberID, groupID)
			return ErrSubscriberNotFound
		}
		s.logger.Error("Delete: repository error for subscriber id=%d: %v", subscriberID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed subscriber id=%d from group=%d", subscriberID, groupID)
	return nil
}

// Unsubscribe удаляет подписку по токену из письма
// Неизвестный токен означает, что подписка уже снята
func (s *Service) Unsubscribe(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token required", ErrInvalidInput)
	}

	if err := s.subscriberRepo.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
			s.logger.Warn("Unsubscribe: token not found or already used")
			return ErrSubscriberNotFound
		}
		s.logger.Error("Unsubscribe: repository error: %v", err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: subscription removed")
	return nil
}
