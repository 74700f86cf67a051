package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

// CreateBookingRequest HTTP модель запроса
type CreateBookingRequest struct {
	BarberID      int64   `json:"barberId" validate:"required,gt=0"`
	HaircutID     int64   `json:"haircutId" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required"`      // "2024-03-05" или "5/3"
	StartTime     string  `json:"startTime" validate:"required"` // "10:00"
	Customer      string  `json:"customer" validate:"required"`
	CustomerPhone *string `json:"customerPhone,omitempty" validate:"omitempty,max=32"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(shopID int64) *createBooking.Request {
	return &createBooking.Request{
		ShopID:        shopID,
		BarberID:      r.BarberID,
		HaircutID:     r.HaircutID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		Customer:      r.Customer,
		CustomerPhone: r.CustomerPhone,
	}
}

// BookingResponse HTTP модель ответа
type BookingResponse struct {
	ID              int64   `json:"id"`
	BarberID        int64   `json:"barberId"`
	HaircutID       int64   `json:"haircutId"`
	Customer        string  `json:"customer"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	DisplayDate     string  `json:"displayDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	HaircutName     string  `json:"haircutName"`
	HaircutPrice    float64 `json:"haircutPrice"`
	DisplayPrice    string  `json:"displayPrice"`
	BarberName      string  `json:"barberName"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BarberID:        resp.BarberID,
		HaircutID:       resp.HaircutID,
		Customer:        resp.Customer,
		CustomerPhone:   resp.CustomerPhone,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		DisplayDate:     normalize.FormatDisplayDate(resp.BookingDate),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		HaircutName:     resp.HaircutName,
		HaircutPrice:    resp.HaircutPrice,
		DisplayPrice:    normalize.FormatPrice(resp.HaircutPrice),
		BarberName:      resp.BarberName,
		CreatedAt:       resp.CreatedAt,
	}
}
