package haircuts

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

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

// parsePrice принимает цену в свободной форме ("R$ 1.234,56", "35.5")
func parsePrice(raw string) (float64, error) {
	price, err := normalize.ParsePrice(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: price: %v", ErrInvalidInput, err)
	}
	return price, nil
}

// parseDuration принимает длительность вида "40" или "40 min"
func parseDuration(raw string) (int, error) {
	minutes, err := normalize.ParseDurationMinutes(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: duration: %v", ErrInvalidInput, err)
	}
	if minutes > domain.MaxHaircutDurationMinutes {
		return 0, fmt.Errorf("%w: duration must be at most %d minutes", ErrInvalidInput, domain.MaxHaircutDurationMinutes)
	}
	return minutes, nil
}
