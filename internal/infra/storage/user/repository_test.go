package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var createdAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newUser() *domain.User {
	return &domain.User{
		Name:         "Rocha's",
		Email:        "rocha@barber.com",
		PasswordHash: "$2a$10$hash",
		ShopSlug:     "rocha",
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO users \(name,email,password_hash,shop_slug\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id, created_at, updated_at`).
		WithArgs("Rocha's", "rocha@barber.com", "$2a$10$hash", "rocha").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), createdAt, createdAt))

	user, err := repo.Create(context.Background(), newUser())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"email or slug taken", &pq.Error{Code: uniqueViolation, Constraint: "users_email_key"}, ErrUserExists},
		{"other constraint", &pq.Error{Code: "23502"}, ErrExecQuery},
		{"connection", errors.New("connection refused"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewRepository(db)

			mock.ExpectQuery(`INSERT INTO users`).WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), newUser())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetBySlug(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM users WHERE shop_slug = \$1`).
		WithArgs("rocha").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "Rocha's", "rocha@barber.com", "$2a$10$hash", "rocha", createdAt, createdAt))

	user, err := repo.GetBySlug(context.Background(), "rocha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "rocha@barber.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM users WHERE email = \$1`).
		WithArgs("nobody@barber.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByEmail(context.Background(), "nobody@barber.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_GetByID_ScanError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanRow)
}
