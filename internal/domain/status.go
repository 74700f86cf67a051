package domain

import (
	"errors"
	"strings"
)

// ErrInvalidEntityStatus возвращается для неизвестного значения фильтра статуса
var ErrInvalidEntityStatus = errors.New("domain: status must be enabled or disabled")

// Статусы барберов и стрижек в API
const (
	EntityEnabled  = "enabled"
	EntityDisabled = "disabled"
)

// ParseEntityStatus переводит "enabled"/"disabled" в флаг status
func ParseEntityStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case EntityEnabled, "true":
		return true, nil
	case EntityDisabled, "false":
		return false, nil
	}
	return false, ErrInvalidEntityStatus
}

// FormatEntityStatus - обратное преобразование для ответов
func FormatEntityStatus(status bool) string {
	if status {
		return EntityEnabled
	}
	return EntityDisabled
}
