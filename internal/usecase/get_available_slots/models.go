package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ShopID    int64  // ID барбершопа (аккаунта)
	BarberID  int64  // ID барбера
	HaircutID int64  // ID стрижки
	Date      string // "2024-03-05" или "5/3"
}

// Response модель ответа со списком свободных слотов
// Пустой Slots - все слоты дня заняты, это не ошибка
type Response struct {
	Date            time.Time
	BarberID        int64
	HaircutID       int64
	StepMinutes     int
	DurationMinutes int // длительность стрижки вместе с буфером
	Slots           []types.TimeString
}
