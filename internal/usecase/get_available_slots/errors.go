package get_available_slots

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден в барбершопе
	ErrBarberNotFound = errors.New("barber not found")

	// ErrBarberUnavailable возвращается, когда барбер выключен
	ErrBarberUnavailable = errors.New("barber does not accept bookings")

	// ErrHaircutNotFound возвращается, когда стрижка не найдена в барбершопе
	ErrHaircutNotFound = errors.New("haircut not found")

	// ErrHaircutUnavailable возвращается, когда стрижка выключена
	ErrHaircutUnavailable = errors.New("haircut is not available")

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
