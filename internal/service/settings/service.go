package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/settings/models"
)

// Service сервис для работы с настройками рассылки
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
// Строка-синглтон создается с дефолтами при первом обращении
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(current), nil
}

// Update обновляет настройки рассылки
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if req.DailyReminderHour != nil && !domain.IsValidReminderHour(*req.DailyReminderHour) {
		s.logger.Warn("Update: invalid dailyReminderHour=%d", *req.DailyReminderHour)
		return nil, fmt.Errorf("%w: dailyReminderHour must be between 0 and 23", ErrInvalidInput)
	}

	updated, err := s.settingsRepo.Update(ctx, req.ToDomainUpdate())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, notifications=%t reminderHour=%d",
		updated.GlobalNotificationsEnabled, updated.DailyReminderHour)
	return models.FromDomainSettings(updated), nil
}
