package haircut

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
)

var haircutColumns = []string{
	"id",
	"user_id",
	"name",
	"price",
	"duration_minutes",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога стрижек
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, haircut *domain.Haircut) (*domain.Haircut, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("haircuts").
		Columns("user_id", "name", "price", "duration_minutes", "status").
		Values(haircut.UserID, haircut.Name, haircut.Price, haircut.DurationMinutes, haircut.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&haircut.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	haircut.CreatedAt = createdAt.Time
	haircut.UpdatedAt = updatedAt.Time

	return haircut, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Haircut, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(haircutColumns...).
		From("haircuts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	haircut, err := scanHaircut(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHaircutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan haircut: %v", ErrScanRow, err)
	}

	return haircut, nil
}

// List получает каталог барбершопа, отсортированный по названию
func (r *Repository) List(ctx context.Context, filter domain.HaircutsFilter) ([]*domain.Haircut, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(haircutColumns...).
		From("haircuts").
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

	haircuts := make([]*domain.Haircut, 0)
	for rows.Next() {
		haircut, err := scanHaircut(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		haircuts = append(haircuts, haircut)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return haircuts, nil
}

func (r *Repository) Update(ctx context.Context, haircut *domain.Haircut) (*domain.Haircut, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("haircuts").
		Set("name", haircut.Name).
		Set("price", haircut.Price).
		Set("duration_minutes", haircut.DurationMinutes).
		Set("status", haircut.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": haircut.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHaircutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	haircut.CreatedAt = createdAt.Time
	haircut.UpdatedAt = updatedAt.Time

	return haircut, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHaircut(row rowScanner) (*domain.Haircut, error) {
	var haircut domain.Haircut
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&haircut.ID,
		&haircut.UserID,
		&haircut.Name,
		&haircut.Price,
		&haircut.DurationMinutes,
		&haircut.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	haircut.CreatedAt = createdAt.Time
	haircut.UpdatedAt = updatedAt.Time

	return &haircut, nil
}
