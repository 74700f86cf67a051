package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UserRepository интерфейс репозитория аккаунтов
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer выпускает JWT для сотрудников барбершопа
type TokenIssuer interface {
	Issue(userID int64, shopSlug string) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
