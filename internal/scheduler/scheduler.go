package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/usecase/run_reminders"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// RemindersUseCase интерфейс запуска рассылки напоминаний
type RemindersUseCase interface {
	Execute(ctx context.Context, req *run_reminders.Request) (*run_reminders.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now()
}

// Scheduler ежечасно сверяет текущий час с настроенным часом рассылки
// и запускает напоминания при совпадении
// Час перечитывается из настроек на каждом тике, поэтому изменение
// вступает в силу без перезапуска сервиса
type Scheduler struct {
	cron         *cron.Cron
	settingsRepo SettingsRepository
	reminders    RemindersUseCase
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый планировщик напоминаний
func New(settingsRepo SettingsRepository, reminders RemindersUseCase, logger Logger) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		settingsRepo: settingsRepo,
		reminders:    reminders,
		timeProvider: &realTimeProvider{},
		logger:       logger,
	}
}

// Start запускает ежечасный тик планировщика
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", s.tick); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Scheduler: started, checking reminder hour every hour")
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего тика
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}

// tick один ежечасный проход планировщика
func (s *Scheduler) tick() {
	ctx := context.Background()

	currentSettings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Scheduler: failed to get settings: %v", err)
		return
	}

	now := s.timeProvider.Now()
	if now.Hour() != currentSettings.DailyReminderHour {
		return
	}

	s.logger.Info("Scheduler: reminder hour reached, running reminders")
	if _, err := s.reminders.Execute(ctx, &run_reminders.Request{}); err != nil {
		if errors.Is(err, run_reminders.ErrRunInProgress) {
			s.logger.Warn("Scheduler: reminder run already in progress, skipping tick")
			return
		}
		s.logger.Error("Scheduler: reminder run failed: %v", err)
	}
}
