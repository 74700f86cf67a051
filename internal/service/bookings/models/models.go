package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований барбершопа
type ListBookingsRequest struct {
	UserID   int64
	Date     *string // "2024-03-05" или "5/3"
	BarberID *int64
	Status   *string
}

// ChangeStatusRequest запрос на завершение или отмену бронирования
type ChangeStatusRequest struct {
	UserID    int64
	BookingID int64
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	BarberID        int64   `json:"barberId"`
	HaircutID       int64   `json:"haircutId"`
	Customer        string  `json:"customer"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2024-03-05"
	DisplayDate     string  `json:"displayDate"` // "5/3"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	// Денормализованные данные
	HaircutName  string  `json:"haircutName"`
	HaircutPrice float64 `json:"haircutPrice"`
	DisplayPrice string  `json:"displayPrice"`
	BarberName   string  `json:"barberName"`

	FinishedAt  *string `json:"finishedAt,omitempty"`  // ISO 8601
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		BarberID:        b.BarberID,
		HaircutID:       b.HaircutID,
		Customer:        b.Customer,
		CustomerPhone:   b.CustomerPhone,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		DisplayDate:     normalize.FormatDisplayDate(b.BookingDate),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		HaircutName:     b.HaircutName,
		HaircutPrice:    b.HaircutPrice,
		DisplayPrice:    normalize.FormatPrice(b.HaircutPrice),
		BarberName:      b.BarberName,
		FinishedAt:      formatTimestamp(b.FinishedAt),
		CancelledAt:     formatTimestamp(b.CancelledAt),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
