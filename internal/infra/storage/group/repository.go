package group

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var groupColumns = []string{
	"id",
	"name",
	"description",
	"template",
	"logo_url",
	"access_code",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с группами (тенантами)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория групп
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую группу
// Код доступа должен быть сгенерирован заранее на уровне сервиса
func (r *Repository) Create(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("groups").
		Columns(
			"name",
			"description",
			"template",
			"logo_url",
			"access_code",
		).
		Values(
			group.Name,
			group.Description,
			group.Template,
			group.LogoURL,
			group.AccessCode,
		).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&group.ID,
		&group.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDuplicateAccessCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	group.CreatedAt = createdAt.Time
	group.UpdatedAt = updatedAt.Time

	return group, nil
}

// GetByID получает группу по ID независимо от активности
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetActiveByID получает активную группу по ID
// Используется публичными маршрутами: архивные группы для них не существуют
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Group, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id, "is_active": true})
}

// GetActiveByAccessCode получает активную группу по коду доступа
func (r *Repository) GetActiveByAccessCode(ctx context.Context, accessCode string) (*domain.Group, error) {
	return r.getOne(ctx, squirrel.Eq{"access_code": accessCode, "is_active": true})
}

// List получает все группы (включая архивные), отсортированные по дате создания (DESC)
func (r *Repository) List(ctx context.Context) ([]*domain.Group, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groupColumns...).
		From("groups").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGroups(rows)
}

// ListActive получает все активные группы
// Используется движком напоминаний для обхода тенантов
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Group, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groupColumns...).
		From("groups").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGroups(rows)
}

// ExistsByAccessCode проверяет занятость кода доступа среди всех групп,
// включая архивные (код должен быть глобально уникален)
func (r *Repository) ExistsByAccessCode(ctx context.Context, accessCode string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("groups").
		Where(squirrel.Eq{"access_code": accessCode}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByAccessCode - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByAccessCode - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// SetAccessCode сохраняет код доступа для группы
// Используется для ленивого бэкфилла кодов у старых групп
func (r *Repository) SetAccessCode(ctx context.Context, id int64, accessCode string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("groups").
		Set("access_code", accessCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAccessCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return ErrDuplicateAccessCode
		}
		return fmt.Errorf("%w: SetAccessCode - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAccessCode - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Update обновляет группу; nil-поля фильтра не затрагиваются
func (r *Repository) Update(ctx context.Context, id int64, update domain.GroupUpdate) (*domain.Group, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("groups").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(groupColumns))

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Template != nil {
		updateBuilder = updateBuilder.Set("template", *update.Template)
	}
	if update.LogoURL != nil {
		updateBuilder = updateBuilder.Set("logo_url", *update.LogoURL)
	}
	if update.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *update.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	group, err := r.scanGroup(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan group: %v", ErrScanRow, err)
	}

	return group, nil
}

// Delete физически удаляет группу
// Связанные события и подписчики удаляются на уровне сервиса в одной транзакции
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("groups").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// getOne получает одну группу по произвольному условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Group, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groupColumns...).
		From("groups").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	group, err := r.scanGroup(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan group: %v", ErrScanRow, err)
	}

	return group, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanGroup сканирует одну группу
func (r *Repository) scanGroup(row rowScanner) (*domain.Group, error) {
	var group domain.Group
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.Template,
		&group.LogoURL,
		&group.AccessCode,
		&group.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	group.CreatedAt = createdAt.Time
	group.UpdatedAt = updatedAt.Time

	return &group, nil
}

// scanGroups сканирует результаты запроса в слайс групп
func (r *Repository) scanGroups(rows *sql.Rows) ([]*domain.Group, error) {
	groups := make([]*domain.Group, 0)

	for rows.Next() {
		group, err := r.scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanGroups - scan row: %v", ErrScanRow, err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGroups - rows error: %v", ErrScanRow, err)
	}

	return groups, nil
}

// joinColumns собирает список колонок для RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
