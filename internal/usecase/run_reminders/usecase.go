package run_reminders

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	groupRepo "github.com/m04kA/SMC-TeeTimeService/internal/infra/storage/group"
)

// UseCase use case рассылки напоминаний о незаполненных слотах
// Выполняется не чаще одного раза одновременно: повторный запуск при
// незавершенном предыдущем получает ErrRunInProgress
type UseCase struct {
	settingsRepo   SettingsRepository
	groupRepo      GroupRepository
	eventRepo      EventRepository
	subscriberRepo SubscriberRepository
	mailer         Mailer
	adminEmails    []string
	timeProvider   TimeProvider
	logger         Logger

	mu sync.Mutex
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	groupRepo GroupRepository,
	eventRepo EventRepository,
	subscriberRepo SubscriberRepository,
	mailer Mailer,
	adminEmails []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo:   settingsRepo,
		groupRepo:      groupRepo,
		eventRepo:      eventRepo,
		subscriberRepo: subscriberRepo,
		mailer:         mailer,
		adminEmails:    adminEmails,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет рассылку напоминаний
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.mu.TryLock() {
		uc.logger.Warn("RunReminders: previous run still in progress")
		return nil, ErrRunInProgress
	}
	defer uc.mu.Unlock()

	uc.logger.Info("RunReminders: starting reminder run")

	// 1. Снимаем снапшот настроек один раз на весь запуск
	currentSettings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("RunReminders: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 2. При выключенных уведомлениях рассылка пропускается целиком
	if !currentSettings.GlobalNotificationsEnabled {
		uc.logger.Info("RunReminders: global notifications disabled, skipping")
		return &Response{OK: true, Skipped: true, Summary: []GroupSummary{}}, nil
	}

	// 3. Собираем группы: все активные либо одна запрошенная
	targetGroups, err := uc.resolveGroups(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	windowEnd := now.Add(domain.ReminderWindowHours * time.Hour)

	summary := make([]GroupSummary, 0, len(targetGroups))

	// 4. Обрабатываем группы по очереди. Сбой чтения хранилища прерывает
	// весь запуск: частичная сводка вводила бы в заблуждение
	for _, group := range targetGroups {
		groupSummary, err := uc.processGroup(ctx, group, now, windowEnd)
		if err != nil {
			uc.logger.Error("RunReminders: failed to process group id=%d: %v", group.ID, err)
			return nil, err
		}
		if groupSummary == nil {
			continue
		}
		summary = append(summary, *groupSummary)
	}

	uc.logger.Info("RunReminders: finished, %d groups with reminders", len(summary))
	return &Response{OK: true, Summary: summary}, nil
}

// resolveGroups возвращает группы для рассылки
func (uc *UseCase) resolveGroups(ctx context.Context, req *Request) ([]*domain.Group, error) {
	if req != nil && req.GroupID != nil {
		group, err := uc.groupRepo.GetActiveByID(ctx, *req.GroupID)
		if err != nil {
			if errors.Is(err, groupRepo.ErrGroupNotFound) {
				uc.logger.Warn("RunReminders: group id=%d not found or inactive", *req.GroupID)
				return []*domain.Group{}, nil
			}
			return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
		}
		return []*domain.Group{group}, nil
	}

	groupList, err := uc.groupRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("RunReminders: failed to list active groups: %v", err)
		return nil, fmt.Errorf("%w: failed to list active groups: %v", ErrInternal, err)
	}
	return groupList, nil
}

// processGroup собирает незаполненные слоты группы и рассылает письма
// Возвращает nil без ошибки, когда незаполненных слотов нет
func (uc *UseCase) processGroup(ctx context.Context, group *domain.Group, now, windowEnd time.Time) (*GroupSummary, error) {
	empties, err := uc.findEmptySlots(ctx, group.ID, now, windowEnd)
	if err != nil {
		return nil, err
	}
	if len(empties) == 0 {
		return nil, nil
	}

	subject := fmt.Sprintf("Empty Tee Times – %s", group.Name)
	bodyHTML := buildReminderBody(group.Name, empties)

	sentToSubscribers, err := uc.sendToSubscribers(ctx, group.ID, subject, bodyHTML)
	if err != nil {
		return nil, err
	}
	sentToAdmins := uc.sendToAdmins(subject, bodyHTML)

	uc.logger.Info("RunReminders: group id=%d empties=%d subscribers=%d admins=%d",
		group.ID, len(empties), sentToSubscribers, sentToAdmins)

	return &GroupSummary{
		GroupID:           group.ID,
		GroupName:         group.Name,
		Empties:           len(empties),
		SentToSubscribers: sentToSubscribers,
		SentToAdmins:      sentToAdmins,
	}, nil
}

// findEmptySlots возвращает слоты со свободными местами в событиях группы
// в пределах окна напоминаний
func (uc *UseCase) findEmptySlots(ctx context.Context, groupID int64, now, windowEnd time.Time) ([]EmptySlot, error) {
	eventList, err := uc.eventRepo.ListTeeTimeEventsInWindow(ctx, domain.EventsWindowFilter{
		GroupID: groupID,
		From:    now,
		To:      windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events in window: %v", ErrInternal, err)
	}

	var empties []EmptySlot
	for _, ev := range eventList {
		for i := range ev.TeeTimes {
			tt := &ev.TeeTimes[i]
			remaining := tt.Remaining()
			if remaining <= 0 {
				continue
			}
			empties = append(empties, EmptySlot{
				EventID:   ev.ID,
				EventName: ev.Name,
				EventDate: ev.Date,
				Time:      tt.Time,
				Remaining: remaining,
			})
		}
	}
	return empties, nil
}

// sendToSubscribers рассылает письмо подписчикам группы
// Сбой доставки одному адресату не прерывает рассылку остальным,
// а сбой чтения списка подписчиков фатален для всего запуска
func (uc *UseCase) sendToSubscribers(ctx context.Context, groupID int64, subject, bodyHTML string) (int, error) {
	subs, err := uc.subscriberRepo.ListByGroup(ctx, groupID)
	if err != nil {
		uc.logger.Error("RunReminders: failed to list subscribers for group id=%d: %v", groupID, err)
		return 0, fmt.Errorf("%w: failed to list subscribers: %v", ErrInternal, err)
	}

	sent := 0
	for _, sub := range subs {
		htmlBody := uc.mailer.FrameEmail(subject, bodyHTML+uc.mailer.UnsubscribeFooter(sub.UnsubscribeToken))
		if err := uc.mailer.Send(sub.Email, subject, htmlBody); err != nil {
			uc.logger.Warn("RunReminders: failed to send to subscriber id=%d: %v", sub.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// sendToAdmins рассылает административные копии письма
func (uc *UseCase) sendToAdmins(subject, bodyHTML string) int {
	if len(uc.adminEmails) == 0 {
		uc.logger.Warn("RunReminders: no admin emails configured, skipping admin copies")
		return 0
	}

	sent := 0
	for _, email := range uc.adminEmails {
		if err := uc.mailer.Send(email, subject, uc.mailer.FrameEmail(subject, bodyHTML)); err != nil {
			uc.logger.Warn("RunReminders: failed to send admin copy to %s: %v", email, err)
			continue
		}
		sent++
	}
	return sent
}

// buildReminderBody строит HTML-список незаполненных слотов
func buildReminderBody(groupName string, empties []EmptySlot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"<p>Empty or not-full tee times for <strong>%s</strong> in the next %d hours:</p><ul>",
		html.EscapeString(groupName), domain.ReminderWindowHours))
	for _, e := range empties {
		sb.WriteString(fmt.Sprintf("<li>%s – %s at %s (%d open)</li>",
			html.EscapeString(e.EventName),
			e.EventDate.Format("Mon Jan 2 2006"),
			e.Time,
			e.Remaining))
	}
	sb.WriteString("</ul>")
	return sb.String()
}
