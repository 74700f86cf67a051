package haircuts

import "errors"

var (
	// ErrHaircutNotFound возвращается, когда стрижка не найдена
	ErrHaircutNotFound = errors.New("haircut not found")

	// ErrAccessDenied возвращается, когда стрижка принадлежит другому барбершопу
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
