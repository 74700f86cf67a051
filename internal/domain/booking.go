package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusFinished  BookingStatus = "finished"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// Booking - запись клиента к барберу
type Booking struct {
	ID              int64
	UserID          int64
	BarberID        int64
	HaircutID       int64
	Customer        string
	CustomerPhone   *string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	HaircutName  string
	HaircutPrice float64
	BarberName   string

	FinishedAt  *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlots returns true if the booking blocks barber's time
func (b *Booking) OccupiesSlots() bool {
	return b.Status == StatusScheduled
}

// CanBeFinished returns true if the booking can be marked as done
func (b *Booking) CanBeFinished() bool {
	return b.Status == StatusScheduled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// BookingsFilter фильтр для получения бронирований барбершопа
type BookingsFilter struct {
	UserID   int64          // Обязательный параметр
	BarberID *int64         // Фильтр по барберу (опционально)
	Date     *time.Time     // Конкретная дата (опционально)
	Status   *BookingStatus // Фильтр по статусу (опционально)
}
