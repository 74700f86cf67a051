package availability

import "errors"

var (
	// ErrParse возвращается при некорректной строке времени
	ErrParse = errors.New("availability: malformed time string")

	// ErrInvalidStep возвращается, когда шаг слотов не положительный
	ErrInvalidStep = errors.New("availability: slot step must be positive")

	// ErrInvalidDuration возвращается, когда длительность услуги не положительная
	ErrInvalidDuration = errors.New("availability: service duration must be positive")
)
