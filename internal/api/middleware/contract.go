package middleware

import "github.com/m04kA/SMC-BarberService/pkg/token"

// TokenParser проверяет JWT сотрудника
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
