package settings

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек слотов
type SettingsRepository interface {
	Create(ctx context.Context, s *domain.SlotSettings) (*domain.SlotSettings, error)
	GetByScope(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error)
	GetWithHierarchy(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error)
	GetAllByUser(ctx context.Context, userID int64) ([]*domain.SlotSettings, error)
	Update(ctx context.Context, id int64, s *domain.SlotSettings) (*domain.SlotSettings, error)
}

// BarberRepository нужен для проверки, что барбер принадлежит барбершопу
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
