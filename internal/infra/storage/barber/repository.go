package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var barberColumns = []string{
	"id",
	"user_id",
	"name",
	"work_start",
	"work_end",
	"available_at",
	"status",
	"haircuts_done",
	"created_at",
	"updated_at",
}

// Repository репозиторий барберов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создаёт барбера
func (r *Repository) Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbers").
		Columns("user_id", "name", "work_start", "work_end", "available_at", "status", "haircuts_done").
		Values(
			barber.UserID,
			barber.Name,
			barber.WorkStart,
			barber.WorkEnd,
			pq.Array(slotsToStrings(barber.AvailableAt)),
			barber.Status,
			barber.HaircutsDone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&barber.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return barber, nil
}

// GetByID получает барбера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	barber, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return barber, nil
}

// List получает барберов барбершопа, опционально только с нужным статусом
func (r *Repository) List(ctx context.Context, filter domain.BarbersFilter) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("name ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		barber, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// Update обновляет профиль и расписание барбера
func (r *Repository) Update(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("name", barber.Name).
		Set("work_start", barber.WorkStart).
		Set("work_end", barber.WorkEnd).
		Set("available_at", pq.Array(slotsToStrings(barber.AvailableAt))).
		Set("status", barber.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": barber.ID}).
		Suffix("RETURNING haircuts_done, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&barber.HaircutsDone, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return barber, nil
}

// SetStatus включает или выключает барбера
func (r *Repository) SetStatus(ctx context.Context, id int64, status bool) error {
	return r.exec(ctx, "SetStatus", psqlbuilder.Update("barbers").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// IncrementHaircutsDone увеличивает счётчик выполненных стрижек
func (r *Repository) IncrementHaircutsDone(ctx context.Context, id int64) error {
	return r.exec(ctx, "IncrementHaircutsDone", psqlbuilder.Update("barbers").
		Set("haircuts_done", squirrel.Expr("haircuts_done + 1")).
		Where(squirrel.Eq{"id": id}))
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBarberNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var barber domain.Barber
	var availableAt []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&barber.ID,
		&barber.UserID,
		&barber.Name,
		&barber.WorkStart,
		&barber.WorkEnd,
		pq.Array(&availableAt),
		&barber.Status,
		&barber.HaircutsDone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	barber.AvailableAt, err = stringsToSlots(availableAt)
	if err != nil {
		return nil, err
	}
	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return &barber, nil
}

func slotsToStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func stringsToSlots(raw []string) ([]types.TimeString, error) {
	out := make([]types.TimeString, 0, len(raw))
	for _, s := range raw {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, s)
		}
		out = append(out, ts)
	}
	return out, nil
}
