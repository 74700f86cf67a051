package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDurationMinutes разбирает длительность услуги в минутах
// Принимает "45" или число с нечисловым суффиксом ("30 min", "40min")
func ParseDurationMinutes(input string) (int, error) {
	s := strings.TrimSpace(input)

	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %w: no leading digits in %q", ErrValidation, ErrParse, input)
	}

	minutes, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q: %v", ErrParse, input, err)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: duration must be positive, got %d", ErrValidation, minutes)
	}

	return minutes, nil
}
