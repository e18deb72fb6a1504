package subscriber

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

var subscriberColumns = []string{
	"id",
	"group_id",
	"email",
	"name",
	"unsubscribe_token",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с подписчиками рассылки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписчиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает подписчика или обновляет существующего по паре (group_id, email)
// Повторная подписка обновляет имя и выдает новый токен отписки
func (r *Repository) Upsert(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscribers").
		Columns(
			"group_id",
			"email",
			"name",
			"unsubscribe_token",
		).
		Values(
			sub.GroupID,
			sub.Email,
			sub.Name,
			sub.UnsubscribeToken,
		).
		Suffix(`ON CONFLICT (group_id, email) DO UPDATE
			SET name = EXCLUDED.name,
			    unsubscribe_token = EXCLUDED.unsubscribe_token,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sub.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return sub, nil
}

// ListByGroup получает подписчиков группы, отсортированных по дате подписки (DESC)
func (r *Repository) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(subscriberColumns...).
		From("subscribers").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	subs := make([]*domain.Subscriber, 0)
	for rows.Next() {
		var sub domain.Subscriber
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&sub.ID,
			&sub.GroupID,
			&sub.Email,
			&sub.Name,
			&sub.UnsubscribeToken,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByGroup - scan row: %v", ErrScanRow, err)
		}

		sub.CreatedAt = createdAt.Time
		sub.UpdatedAt = updatedAt.Time
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - rows error: %v", ErrScanRow, err)
	}

	return subs, nil
}

// Delete удаляет подписчика группы по ID
func (r *Repository) Delete(ctx context.Context, groupID, subscriberID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("subscribers").
		Where(squirrel.Eq{"id": subscriberID, "group_id": groupID}).
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
		return ErrSubscriberNotFound
	}

	return nil
}

// DeleteByToken удаляет подписчика по токену отписки
// Токен - единственный реквизит операции; нулевое количество удаленных
// строк означает, что токен не найден (в том числе при повторной отписке)
func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("subscribers").
		Where(squirrel.Eq{"unsubscribe_token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}

// DeleteByGroupID удаляет всех подписчиков группы
// Используется при жестком удалении группы
func (r *Repository) DeleteByGroupID(ctx context.Context, groupID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("subscribers").
		Where(squirrel.Eq{"group_id": groupID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByGroupID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByGroupID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
