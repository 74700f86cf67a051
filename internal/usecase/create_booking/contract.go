package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetScheduledByBarberAndDate внутри транзакции блокирует записи (FOR UPDATE)
	GetScheduledByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// SettingsResolver возвращает действующие настройки слотов с учетом иерархии
type SettingsResolver interface {
	Resolve(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error)
}

// SlotsCache кэш рассчитанных слотов
type SlotsCache interface {
	InvalidateDay(ctx context.Context, barberID int64, date time.Time) error
}

// Metrics счётчики событий бронирований
type Metrics interface {
	IncBookingEvent(event string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
