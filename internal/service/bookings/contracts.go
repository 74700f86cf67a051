package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Finish(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	IncrementHaircutsDone(ctx context.Context, id int64) error
}

// SlotsCache кэш свободных слотов
type SlotsCache interface {
	InvalidateDay(ctx context.Context, barberID int64, date time.Time) error
}

// Metrics счётчики событий бронирований
type Metrics interface {
	IncBookingEvent(event string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
