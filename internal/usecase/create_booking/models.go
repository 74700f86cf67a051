package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ShopID        int64   // ID барбершопа (аккаунта)
	BarberID      int64   // ID барбера
	HaircutID     int64   // ID стрижки
	Date          string  // "2024-03-05" или "5/3"
	StartTime     string  // "10:00"
	Customer      string  // Имя клиента
	CustomerPhone *string // Телефон (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	BarberID        int64
	HaircutID       int64
	Customer        string
	CustomerPhone   *string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные
	HaircutName  string
	HaircutPrice float64
	BarberName   string

	CreatedAt time.Time
}
