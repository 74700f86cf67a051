package normalize

import "errors"

var (
	// ErrParse возвращается, когда строку не удалось разобрать
	ErrParse = errors.New("normalize: parse error")

	// ErrValidation возвращается, когда значение разобрано, но не проходит проверку
	ErrValidation = errors.New("normalize: validation error")
)
