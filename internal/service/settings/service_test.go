package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSettingsRepo struct {
	settings domain.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	cp := r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, update domain.SettingsUpdate) (*domain.Settings, error) {
	if update.GlobalNotificationsEnabled != nil {
		r.settings.GlobalNotificationsEnabled = *update.GlobalNotificationsEnabled
	}
	if update.DailyReminderHour != nil {
		r.settings.DailyReminderHour = *update.DailyReminderHour
	}
	cp := r.settings
	return &cp, nil
}

func TestGet(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.Settings{
		GlobalNotificationsEnabled: true,
		DailyReminderHour:          domain.DefaultReminderHour,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.GlobalNotificationsEnabled)
	assert.Equal(t, 17, resp.DailyReminderHour)
}

func TestUpdate(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.Settings{
		GlobalNotificationsEnabled: true,
		DailyReminderHour:          17,
	}}
	svc := NewService(repo, nopLogger{})

	disabled := false
	hour := 8
	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		GlobalNotificationsEnabled: &disabled,
		DailyReminderHour:          &hour,
	})
	require.NoError(t, err)
	assert.False(t, resp.GlobalNotificationsEnabled)
	assert.Equal(t, 8, resp.DailyReminderHour)

	// Частичное обновление не трогает остальные поля
	enabled := true
	resp, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		GlobalNotificationsEnabled: &enabled,
	})
	require.NoError(t, err)
	assert.True(t, resp.GlobalNotificationsEnabled)
	assert.Equal(t, 8, resp.DailyReminderHour)
}

func TestUpdate_InvalidHour(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	for _, hour := range []int{-1, 24, 100} {
		h := hour
		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{DailyReminderHour: &h})
		assert.ErrorIs(t, err, ErrInvalidInput, "hour=%d", hour)
	}
}
