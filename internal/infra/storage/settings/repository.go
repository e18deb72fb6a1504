package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с глобальными настройками уведомлений
// Настройки - единственная строка (singleton), лениво создаваемая
// со значениями по умолчанию при первом чтении
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки, создавая строку с дефолтами при её отсутствии
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.ensureRow(ctx, executor); err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(
		"notifications_enabled",
		"reminder_hour",
		"created_at",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"singleton": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.Settings
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.GlobalNotificationsEnabled,
		&settings.DailyReminderHour,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Update обновляет настройки; nil-поля не затрагиваются
// Строка создается при отсутствии, поэтому обновление до первого
// чтения тоже работает
func (r *Repository) Update(ctx context.Context, update domain.SettingsUpdate) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.ensureRow(ctx, executor); err != nil {
		return nil, err
	}

	updateBuilder := psqlbuilder.Update("settings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"singleton": true}).
		Suffix("RETURNING notifications_enabled, reminder_hour, created_at, updated_at")

	if update.GlobalNotificationsEnabled != nil {
		updateBuilder = updateBuilder.Set("notifications_enabled", *update.GlobalNotificationsEnabled)
	}
	if update.DailyReminderHour != nil {
		updateBuilder = updateBuilder.Set("reminder_hour", *update.DailyReminderHour)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var settings domain.Settings
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.GlobalNotificationsEnabled,
		&settings.DailyReminderHour,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// ensureRow создает singleton-строку настроек, если её ещё нет
func (r *Repository) ensureRow(ctx context.Context, executor DBExecutor) error {
	query, args, err := psqlbuilder.Insert("settings").
		Columns("singleton").
		Values(true).
		Suffix("ON CONFLICT (singleton) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ensureRow - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ensureRow - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
