package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePrice приводит введённую цену к числу
// Символы валюты и пробелы отбрасываются. Если есть запятая - она считается десятичным
// разделителем, а точки - разделителями тысяч ("R$ 1.234,56" -> 1234.56).
// Без запятой точка считается десятичной, если после неё 1-2 цифры ("35.5" -> 35.5),
// иначе - разделителем тысяч ("1.500" -> 1500). Точка после запятой - ошибка.
func ParsePrice(input string) (float64, error) {
	var b strings.Builder
	for _, r := range input {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := b.String()

	if !strings.ContainsAny(s, "0123456789") {
		return 0, fmt.Errorf("%w: price %q has no digits", ErrParse, input)
	}

	switch {
	case strings.Contains(s, ","):
		// "1,234.56" - разделители в другом порядке, угадывать не будем
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			return 0, fmt.Errorf("%w: price %q has a dot after the decimal comma", ErrParse, input)
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") == 1:
		if idx := strings.Index(s, "."); len(s)-idx-1 > 2 {
			s = strings.ReplaceAll(s, ".", "")
		}
	default:
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q: %v", ErrParse, input, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: price must not be negative, got %v", ErrValidation, value)
	}

	return math.Round(value*100) / 100, nil
}

// FormatPrice форматирует цену для отображения: "R$ 1.234,56"
func FormatPrice(value float64) string {
	cents := int64(math.Round(value * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents%100)
}
