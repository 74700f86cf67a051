package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat формат даты в API (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// FormatDisplayDate форматирует дату как "D/M" (без ведущих нулей и без года)
// Это же значение используется как ключ выбора дня на клиенте
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}

// ParseDisplayDate разбирает ключ "D/M" и подставляет год:
// ближайшая такая дата, не раньше текущего дня
func ParseDisplayDate(s string, now time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: date %q is not D/M", ErrParse, s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: day in %q: %v", ErrParse, s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month in %q: %v", ErrParse, s, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, year := range []int{now.Year(), now.Year() + 1} {
		candidate, ok := buildDate(year, month, day, now.Location())
		if !ok {
			continue
		}
		if !candidate.Before(today) {
			return candidate, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: date %q does not exist", ErrValidation, s)
}

// ParseDate принимает дату в формате YYYY-MM-DD или D/M
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return ParseDisplayDate(s, now)
	}

	t, err := time.ParseInLocation(DateFormat, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrParse, s, err)
	}
	return t, nil
}

// buildDate собирает дату и проверяет, что time.Date не нормализовал её (например, 31/2)
func buildDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
