package groups

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

const (
	// accessCodeSuffixLen длина случайного суффикса кода доступа
	accessCodeSuffixLen = 6

	// maxCodeAttempts ограничивает цикл подбора уникального кода
	maxCodeAttempts = 10
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Service сервис для работы с группами
type Service struct {
	groupRepo      GroupRepository
	eventRepo      EventRepository
	subscriberRepo SubscriberRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса групп
func NewService(
	groupRepo GroupRepository,
	eventRepo EventRepository,
	subscriberRepo SubscriberRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		groupRepo:      groupRepo,
		eventRepo:      eventRepo,
		subscriberRepo: subscriberRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Create создает новую группу с уникальным кодом доступа
func (s *Service) Create(ctx context.Context, req *models.CreateGroupRequest) (*models.GroupResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: empty group name")
		return nil, fmt.Errorf("%w: name required", ErrInvalidInput)
	}

	template := domain.DefaultTemplate
	if req.Template != nil {
		template = domain.GroupTemplate(*req.Template)
		if !domain.IsValidTemplate(template) {
			s.logger.Warn("Create: invalid template=%s", *req.Template)
			return nil, fmt.Errorf("%w: invalid template", ErrInvalidInput)
		}
	}

	accessCode, err := s.generateUniqueAccessCode(ctx, req.Name)
	if err != nil {
		s.logger.Error("Create: failed to generate access code: %v", err)
		return nil, fmt.Errorf("%w: Create - generate access code: %v", ErrInternal, err)
	}

	group := &domain.Group{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Template:    template,
		LogoURL:     req.LogoURL,
		AccessCode:  &accessCode,
		IsActive:    true,
	}

	created, err := s.groupRepo.Create(ctx, group)
	if err != nil {
		// Гонка с параллельным созданием: код успел занять кто-то другой
		if errors.Is(err, groupRepo.ErrDuplicateAccessCode) {
			s.logger.Warn("Create: access code collision on insert, retrying")
			return s.retryCreateWithFreshCode(ctx, group)
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created group id=%d accessCode=%s", created.ID, accessCode)
	return models.FromDomainGroup(created), nil
}

// ResolveAccessCode обменивает код доступа на идентификатор активной группы
func (s *Service) ResolveAccessCode(ctx context.Context, accessCode string) (*models.ResolveAccessCodeResponse, error) {
	if accessCode == "" {
		return nil, fmt.Errorf("%w: accessCode required", ErrInvalidInput)
	}

	group, err := s.groupRepo.GetActiveByAccessCode(ctx, accessCode)
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("ResolveAccessCode: no active group for code")
			return nil, ErrGroupNotFound
		}
		s.logger.Error("ResolveAccessCode: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveAccessCode - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResolveAccessCode: resolved group id=%d", group.ID)
	return &models.ResolveAccessCodeResponse{GroupID: group.ID, Name: group.Name}, nil
}

// List возвращает все группы (включая архивные), дозаполняя отсутствующие
// коды доступа у групп, созданных до появления кодов
func (s *Service) List(ctx context.Context) (*models.GroupListResponse, error) {
	groupList, err := s.groupRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, g := range groupList {
		if err := s.ensureAccessCode(ctx, g); err != nil {
			s.logger.Error("List: failed to backfill access code for group id=%d: %v", g.ID, err)
			return nil, fmt.Errorf("%w: List - backfill access code: %v", ErrInternal, err)
		}
	}

	s.logger.Info("List: fetched %d groups", len(groupList))
	return models.FromDomainGroups(groupList), nil
}

// GetByID возвращает активную группу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.GroupResponse, error) {
	group, err := s.groupRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("GetByID: group id=%d not found", id)
			return nil, ErrGroupNotFound
		}
		s.logger.Error("GetByID: repository error for group id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.ensureAccessCode(ctx, group); err != nil {
		s.logger.Error("GetByID: failed to backfill access code for group id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - backfill access code: %v", ErrInternal, err)
	}

	return models.FromDomainGroup(group), nil
}

// Update обновляет поля группы
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateGroupRequest) (*models.GroupResponse, error) {
	if req.Template != nil && !domain.IsValidTemplate(domain.GroupTemplate(*req.Template)) {
		s.logger.Warn("Update: invalid template=%s for group id=%d", *req.Template, id)
		return nil, fmt.Errorf("%w: invalid template", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		s.logger.Warn("Update: empty name for group id=%d", id)
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	group, err := s.groupRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("Update: group id=%d not found", id)
			return nil, ErrGroupNotFound
		}
		s.logger.Error("Update: repository error for group id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated group id=%d", id)
	return models.FromDomainGroup(group), nil
}

// Archive деактивирует группу, сохраняя её данные
// Архивная группа исчезает из публичных маршрутов и из рассылки напоминаний
func (s *Service) Archive(ctx context.Context, id int64) (*models.GroupResponse, error) {
	isActive := false
	group, err := s.groupRepo.Update(ctx, id, domain.GroupUpdate{IsActive: &isActive})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("Archive: group id=%d not found", id)
			return nil, ErrGroupNotFound
		}
		s.logger.Error("Archive: repository error for group id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Archive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Archive: archived group id=%d", id)
	return models.FromDomainGroup(group), nil
}

// HardDelete безвозвратно удаляет группу вместе с событиями и подписчиками
// Все удаления выполняются в одной транзакции
func (s *Service) HardDelete(ctx context.Context, id int64) error {
	if _, err := s.groupRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			s.logger.Warn("HardDelete: group id=%d not found", id)
			return ErrGroupNotFound
		}
		s.logger.Error("HardDelete: repository error for group id=%d: %v", id, err)
		return fmt.Errorf("%w: HardDelete - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.DeleteByGroupID(ctx, id); err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		if err := s.subscriberRepo.DeleteByGroupID(ctx, id); err != nil {
			return fmt.Errorf("delete subscribers: %w", err)
		}
		if err := s.groupRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("HardDelete: transaction failed for group id=%d: %v", id, err)
		return fmt.Errorf("%w: HardDelete - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("HardDelete: deleted group id=%d with all events and subscribers", id)
	return nil
}

// ensureAccessCode дозаполняет код доступа группе, у которой его нет
// Мутирует переданную группу, чтобы ответ сразу содержал новый код
func (s *Service) ensureAccessCode(ctx context.Context, group *domain.Group) error {
	if group.HasAccessCode() {
		return nil
	}

	code, err := s.generateUniqueAccessCode(ctx, group.Name)
	if err != nil {
		return err
	}

	if err := s.groupRepo.SetAccessCode(ctx, group.ID, code); err != nil {
		return err
	}

	group.AccessCode = &code
	s.logger.Info("ensureAccessCode: backfilled access code for group id=%d", group.ID)
	return nil
}

// generateUniqueAccessCode подбирает код доступа, которого еще нет в БД
func (s *Service) generateUniqueAccessCode(ctx context.Context, name string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := makeAccessCode(name)
		if err != nil {
			return "", err
		}

		exists, err := s.groupRepo.ExistsByAccessCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unique access code after %d attempts", maxCodeAttempts)
}

// retryCreateWithFreshCode повторяет вставку группы после коллизии кода доступа
func (s *Service) retryCreateWithFreshCode(ctx context.Context, group *domain.Group) (*models.GroupResponse, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.generateUniqueAccessCode(ctx, group.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate access code: %v", ErrInternal, err)
		}
		group.AccessCode = &code

		created, err := s.groupRepo.Create(ctx, group)
		if err != nil {
			if errors.Is(err, groupRepo.ErrDuplicateAccessCode) {
				continue
			}
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Create: created group id=%d accessCode=%s", created.ID, code)
		return models.FromDomainGroup(created), nil
	}
	return nil, fmt.Errorf("%w: Create - persistent access code collisions", ErrInternal)
}

// makeAccessCode строит код доступа из имени группы и случайного суффикса
// Результат содержит только [a-z0-9]: имя приводится к нижнему регистру,
// все прочие символы отбрасываются
func makeAccessCode(name string) (string, error) {
	suffix := make([]byte, accessCodeSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	// Имя без единого допустимого символа дает запасную основу
	base := sb.String()
	if base == "" {
		base = "group"
	}

	return base + string(suffix), nil
}
