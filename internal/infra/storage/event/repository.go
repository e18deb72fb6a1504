package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TeeTimeService/pkg/psqlbuilder"
)

var eventColumns = []string{
	"id",
	"group_id",
	"name",
	"description",
	"event_date",
	"type",
	"team_size",
	"start_type",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с событиями и их слотами
// Событие - агрегат: слоты и игроки загружаются вместе с ним,
// а мутации слотов всегда проверяют принадлежность событию
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие (без слотов)
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"group_id",
			"name",
			"description",
			"event_date",
			"type",
			"team_size",
			"start_type",
		).
		Values(
			event.GroupID,
			event.Name,
			event.Description,
			event.Date,
			event.Type,
			event.TeamSize,
			event.StartType,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time
	event.TeeTimes = make([]domain.TeeTime, 0)

	return event, nil
}

// GetByID получает событие группы вместе со слотами и игроками
func (r *Repository) GetByID(ctx context.Context, groupID, eventID int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	events, err := r.selectEvents(ctx, executor, squirrel.Eq{"id": eventID, "group_id": groupID}, "id ASC")
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrEventNotFound
	}

	if err := r.attachTeeTimes(ctx, executor, events); err != nil {
		return nil, err
	}

	return events[0], nil
}

// ListUpcomingByGroup получает события группы с датой не раньше from,
// отсортированные по дате по возрастанию, вместе со слотами
func (r *Repository) ListUpcomingByGroup(ctx context.Context, groupID int64, from time.Time) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	events, err := r.selectEvents(ctx, executor,
		squirrel.And{
			squirrel.Eq{"group_id": groupID},
			squirrel.GtOrEq{"event_date": from},
		},
		"event_date ASC",
	)
	if err != nil {
		return nil, err
	}

	if err := r.attachTeeTimes(ctx, executor, events); err != nil {
		return nil, err
	}

	return events, nil
}

// ListTeeTimeEventsInWindow получает события типа teeTime группы,
// попадающие в окно [From, To], вместе со слотами и игроками
// Используется движком напоминаний
func (r *Repository) ListTeeTimeEventsInWindow(ctx context.Context, filter domain.EventsWindowFilter) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	events, err := r.selectEvents(ctx, executor,
		squirrel.And{
			squirrel.Eq{"group_id": filter.GroupID, "type": domain.EventTypeTeeTime},
			squirrel.GtOrEq{"event_date": filter.From},
			squirrel.LtOrEq{"event_date": filter.To},
		},
		"event_date ASC",
	)
	if err != nil {
		return nil, err
	}

	if err := r.attachTeeTimes(ctx, executor, events); err != nil {
		return nil, err
	}

	return events, nil
}

// Update обновляет событие; nil-поля не затрагиваются
func (r *Repository) Update(ctx context.Context, groupID, eventID int64, update domain.EventUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("events").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": eventID, "group_id": groupID})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("event_date", *update.Date)
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}
	if update.TeamSize != nil {
		updateBuilder = updateBuilder.Set("team_size", *update.TeamSize)
	}
	if update.StartType != nil {
		updateBuilder = updateBuilder.Set("start_type", *update.StartType)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete удаляет событие группы; слоты и игроки каскадируются на уровне БД
func (r *Repository) Delete(ctx context.Context, groupID, eventID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": eventID, "group_id": groupID}).
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
		return ErrEventNotFound
	}

	return nil
}

// DeleteByGroupID удаляет все события группы
// Используется при жестком удалении группы
func (r *Repository) DeleteByGroupID(ctx context.Context, groupID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
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

// AddTeeTimes добавляет слоты к событию
// Позиции слотов задаются вызывающей стороной (продолжение сетки)
func (r *Repository) AddTeeTimes(ctx context.Context, eventID int64, teeTimes []domain.TeeTime) error {
	if len(teeTimes) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("tee_times").
		Columns("event_id", "start_time", "capacity", "position")

	for _, tt := range teeTimes {
		insertBuilder = insertBuilder.Values(eventID, tt.Time, tt.Capacity, tt.Position)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddTeeTimes - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddTeeTimes - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetTeeTime получает слот события вместе с игроками
// Внутри транзакции строка слота блокируется (FOR UPDATE) - используется
// при переносе игрока между слотами
func (r *Repository) GetTeeTime(ctx context.Context, eventID, teeTimeID int64) (*domain.TeeTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"event_id",
		"start_time",
		"capacity",
		"position",
		"created_at",
	).
		From("tee_times").
		Where(squirrel.Eq{"id": teeTimeID, "event_id": eventID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTeeTime - build select query: %v", ErrBuildQuery, err)
	}

	var tt domain.TeeTime
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tt.ID,
		&tt.EventID,
		&tt.Time,
		&tt.Capacity,
		&tt.Position,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTeeTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTeeTime - scan tee time: %v", ErrScanRow, err)
	}

	tt.CreatedAt = createdAt.Time

	players, err := r.selectPlayers(ctx, executor, squirrel.Eq{"tee_time_id": teeTimeID})
	if err != nil {
		return nil, err
	}
	tt.Players = players

	return &tt, nil
}

// AdmitPlayer записывает игрока в слот одной условной вставкой:
// INSERT ... SELECT ... WHERE occupied < capacity
// Подсчет занятых мест читает снапшот на момент начала запроса, поэтому
// вызывающий обязан предварительно заблокировать строку слота
// (GetTeeTime с FOR UPDATE внутри транзакции) - тогда конкурентные
// зачисления выстраиваются в очередь и проверяют вместимость по очереди.
// Нулевое количество вставленных строк означает, что слот заполнен.
// Если JoinedAt задан (перенос игрока), исходная отметка времени сохраняется.
func (r *Repository) AdmitPlayer(ctx context.Context, teeTimeID int64, player *domain.Player) (*domain.Player, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	joinedAt := squirrel.Expr("NOW()")
	if !player.JoinedAt.IsZero() {
		joinedAt = squirrel.Expr("?", player.JoinedAt)
	}

	// Внутренний SELECT использует '?'-плейсхолдеры: внешний билдер
	// конвертирует их в $N по всему запросу целиком
	conditionalSelect := squirrel.Select().
		Column(squirrel.Expr("?", teeTimeID)).
		Column(squirrel.Expr("?", player.Name)).
		Column(squirrel.Expr("?", player.Email)).
		Column(joinedAt).
		Where(squirrel.Expr(
			"(SELECT COUNT(*) FROM players WHERE tee_time_id = ?) < (SELECT COALESCE(MAX(capacity), 0) FROM tee_times WHERE id = ?)",
			teeTimeID, teeTimeID,
		))

	query, args, err := psqlbuilder.Insert("players").
		Columns("tee_time_id", "name", "email", "created_at").
		Select(conditionalSelect).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AdmitPlayer - build insert query: %v", ErrBuildQuery, err)
	}

	var joined sql.NullTime
	admitted := *player
	err = executor.QueryRowContext(ctx, query, args...).Scan(&admitted.ID, &joined)

	if err == sql.ErrNoRows {
		return nil, ErrTeeTimeFull
	}
	if err != nil {
		return nil, fmt.Errorf("%w: AdmitPlayer - execute insert: %v", ErrExecQuery, err)
	}

	admitted.TeeTimeID = teeTimeID
	admitted.JoinedAt = joined.Time

	return &admitted, nil
}

// GetPlayer получает игрока слота
func (r *Repository) GetPlayer(ctx context.Context, teeTimeID, playerID int64) (*domain.Player, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tee_time_id",
		"name",
		"email",
		"created_at",
	).
		From("players").
		Where(squirrel.Eq{"id": playerID, "tee_time_id": teeTimeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPlayer - build select query: %v", ErrBuildQuery, err)
	}

	var player domain.Player
	var joinedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&player.ID,
		&player.TeeTimeID,
		&player.Name,
		&player.Email,
		&joinedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPlayer - scan player: %v", ErrScanRow, err)
	}

	player.JoinedAt = joinedAt.Time

	return &player, nil
}

// RemovePlayer удаляет игрока из слота
func (r *Repository) RemovePlayer(ctx context.Context, teeTimeID, playerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("players").
		Where(squirrel.Eq{"id": playerID, "tee_time_id": teeTimeID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemovePlayer - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemovePlayer - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemovePlayer - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// selectEvents выполняет выборку событий по условию
func (r *Repository) selectEvents(ctx context.Context, executor DBExecutor, where squirrel.Sqlizer, orderBy string) ([]*domain.Event, error) {
	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events").
		Where(where).
		OrderBy(orderBy).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: selectEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectEvents - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var event domain.Event
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.GroupID,
			&event.Name,
			&event.Description,
			&event.Date,
			&event.Type,
			&event.TeamSize,
			&event.StartType,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: selectEvents - scan row: %v", ErrScanRow, err)
		}

		event.CreatedAt = createdAt.Time
		event.UpdatedAt = updatedAt.Time
		event.TeeTimes = make([]domain.TeeTime, 0)

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectEvents - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// attachTeeTimes загружает слоты и игроков для списка событий
// Слоты упорядочены по позиции, игроки - по времени записи
func (r *Repository) attachTeeTimes(ctx context.Context, executor DBExecutor, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	eventIDs := make([]int64, len(events))
	byEventID := make(map[int64]*domain.Event, len(events))
	for i, ev := range events {
		eventIDs[i] = ev.ID
		byEventID[ev.ID] = ev
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"event_id",
		"start_time",
		"capacity",
		"position",
		"created_at",
	).
		From("tee_times").
		Where(squirrel.Eq{"event_id": eventIDs}).
		OrderBy("event_id ASC, position ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachTeeTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachTeeTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	teeTimeIDs := make([]int64, 0)

	for rows.Next() {
		var tt domain.TeeTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&tt.ID,
			&tt.EventID,
			&tt.Time,
			&tt.Capacity,
			&tt.Position,
			&createdAt,
		)
		if err != nil {
			return fmt.Errorf("%w: attachTeeTimes - scan row: %v", ErrScanRow, err)
		}

		tt.CreatedAt = createdAt.Time
		tt.Players = make([]domain.Player, 0)

		ev := byEventID[tt.EventID]
		ev.TeeTimes = append(ev.TeeTimes, tt)
		teeTimeIDs = append(teeTimeIDs, tt.ID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachTeeTimes - rows error: %v", ErrScanRow, err)
	}

	if len(teeTimeIDs) == 0 {
		return nil
	}

	// Карта указателей строится после того, как слайсы слотов перестали расти
	byTeeTimeID := make(map[int64]*domain.TeeTime, len(teeTimeIDs))
	for _, ev := range events {
		for i := range ev.TeeTimes {
			byTeeTimeID[ev.TeeTimes[i].ID] = &ev.TeeTimes[i]
		}
	}

	players, err := r.selectPlayers(ctx, executor, squirrel.Eq{"tee_time_id": teeTimeIDs})
	if err != nil {
		return err
	}

	for _, player := range players {
		tt := byTeeTimeID[player.TeeTimeID]
		tt.Players = append(tt.Players, player)
	}

	return nil
}

// selectPlayers выполняет выборку игроков по условию в порядке записи
func (r *Repository) selectPlayers(ctx context.Context, executor DBExecutor, where squirrel.Eq) ([]domain.Player, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"tee_time_id",
		"name",
		"email",
		"created_at",
	).
		From("players").
		Where(where).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: selectPlayers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectPlayers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0)
	for rows.Next() {
		var player domain.Player
		var joinedAt sql.NullTime

		err := rows.Scan(
			&player.ID,
			&player.TeeTimeID,
			&player.Name,
			&player.Email,
			&joinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: selectPlayers - scan row: %v", ErrScanRow, err)
		}

		player.JoinedAt = joinedAt.Time
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectPlayers - rows error: %v", ErrScanRow, err)
	}

	return players, nil
}
