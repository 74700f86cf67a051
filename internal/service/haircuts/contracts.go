package haircuts

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// HaircutRepository интерфейс репозитория стрижек
type HaircutRepository interface {
	Create(ctx context.Context, haircut *domain.Haircut) (*domain.Haircut, error)
	GetByID(ctx context.Context, id int64) (*domain.Haircut, error)
	List(ctx context.Context, filter domain.HaircutsFilter) ([]*domain.Haircut, error)
	Update(ctx context.Context, haircut *domain.Haircut) (*domain.Haircut, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
