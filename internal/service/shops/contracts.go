package shops

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UserRepository интерфейс репозитория аккаунтов барбершопов
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetBySlug(ctx context.Context, slug string) (*domain.User, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	List(ctx context.Context, filter domain.BarbersFilter) ([]*domain.Barber, error)
}

// HaircutRepository интерфейс репозитория стрижек
type HaircutRepository interface {
	List(ctx context.Context, filter domain.HaircutsFilter) ([]*domain.Haircut, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
