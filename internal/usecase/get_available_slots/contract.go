package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/cache/slots"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// HaircutRepository интерфейс репозитория стрижек
type HaircutRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Haircut, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetScheduledByBarberAndDate получает активные записи барбера на дату
	GetScheduledByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// SettingsResolver возвращает действующие настройки слотов с учетом иерархии
type SettingsResolver interface {
	Resolve(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error)
}

// SlotsCache кэш рассчитанных слотов
type SlotsCache interface {
	Get(ctx context.Context, barberID int64, date time.Time, v slots.Variant) ([]types.TimeString, bool, error)
	Generation(ctx context.Context, barberID int64) (int64, error)
	Set(ctx context.Context, barberID int64, date time.Time, v slots.Variant, gen int64, list []types.TimeString) error
}

// Metrics счётчик попаданий в кэш
type Metrics interface {
	IncSlotsCache(hit bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
