package models

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек (nil - поле не меняется)
type UpdateSettingsRequest struct {
	GlobalNotificationsEnabled *bool `json:"globalNotificationsEnabled,omitempty"`
	DailyReminderHour          *int  `json:"dailyReminderHour,omitempty"`
}

// SettingsResponse настройки в ответе API
type SettingsResponse struct {
	GlobalNotificationsEnabled bool      `json:"globalNotificationsEnabled"`
	DailyReminderHour          int       `json:"dailyReminderHour"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain.Settings в SettingsResponse
func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		GlobalNotificationsEnabled: s.GlobalNotificationsEnabled,
		DailyReminderHour:          s.DailyReminderHour,
		CreatedAt:                  s.CreatedAt,
		UpdatedAt:                  s.UpdatedAt,
	}
}

// ToDomainUpdate конвертирует request в domain.SettingsUpdate
func (r *UpdateSettingsRequest) ToDomainUpdate() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		GlobalNotificationsEnabled: r.GlobalNotificationsEnabled,
		DailyReminderHour:          r.DailyReminderHour,
	}
}
