package settings

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
)

const uniqueViolation = "23505"

var settingsColumns = []string{
	"id",
	"user_id",
	"barber_id",
	"slot_step_minutes",
	"buffer_minutes",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек расчёта слотов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создаёт настройки для барбершопа или конкретного барбера
func (r *Repository) Create(ctx context.Context, s *domain.SlotSettings) (*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_settings").
		Columns(
			"user_id",
			"barber_id",
			"slot_step_minutes",
			"buffer_minutes",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			s.UserID,
			s.BarberID,
			s.SlotStepMinutes,
			s.BufferMinutes,
			s.AdvanceBookingDays,
			s.MinBookingNoticeMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateSettings
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByScope получает настройки ровно для указанного уровня
// barberID == nil - настройки всего барбершопа
func (r *Repository) GetByScope(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(settingsColumns...).
		From("slot_settings").
		Where(squirrel.Eq{"user_id": userID})

	if barberID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByScope - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetWithHierarchy получает настройки с учетом приоритетов:
// 1. Настройки конкретного барбера (если barberID указан)
// 2. Настройки всего барбершопа
//
// Если настройки не найдены ни на одном уровне, возвращает ErrSettingsNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error) {
	if barberID != nil {
		s, err := r.GetByScope(ctx, userID, barberID)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrSettingsNotFound) {
			return nil, fmt.Errorf("%w: GetWithHierarchy - level 1 (barber): %v", ErrExecQuery, err)
		}
	}

	s, err := r.GetByScope(ctx, userID, nil)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 2 (shop): %v", ErrExecQuery, err)
	}

	return nil, ErrSettingsNotFound
}

// GetAllByUser получает все настройки барбершопа, общие - первыми
func (r *Repository) GetAllByUser(ctx context.Context, userID int64) ([]*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("slot_settings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("barber_id ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	all := make([]*domain.SlotSettings, 0)
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByUser - scan row: %v", ErrScanRow, err)
		}
		all = append(all, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByUser - rows error: %v", ErrScanRow, err)
	}

	return all, nil
}

// Update обновляет значения настроек
func (r *Repository) Update(ctx context.Context, id int64, s *domain.SlotSettings) (*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_settings").
		Set("slot_step_minutes", s.SlotStepMinutes).
		Set("buffer_minutes", s.BufferMinutes).
		Set("advance_booking_days", s.AdvanceBookingDays).
		Set("min_booking_notice_minutes", s.MinBookingNoticeMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.ID = id
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.SlotSettings, error) {
	var s domain.SlotSettings
	var barberID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&barberID,
		&s.SlotStepMinutes,
		&s.BufferMinutes,
		&s.AdvanceBookingDays,
		&s.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if barberID.Valid {
		s.BarberID = &barberID.Int64
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
