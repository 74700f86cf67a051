package barbers

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// validateName проверяет имя барбера
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return name, nil
}

// parseWorkTime парсит время начала или конца рабочего дня
func parseWorkTime(field, value string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: %s must be in HH:MM format", ErrInvalidInput, field)
	}
	return t, nil
}

// validateWindow проверяет, что рабочий день не пустой
func validateWindow(start, end types.TimeString) error {
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: workStart must be before workEnd", ErrInvalidInput)
	}
	return nil
}

// parseAvailableAt нормализует явный список слотов: формат, сортировка, дубли
func parseAvailableAt(raw []string) ([]types.TimeString, error) {
	slots, err := availability.NormalizeSlots(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: availableAt: %v", ErrInvalidInput, err)
	}
	return slots, nil
}
