package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Day - всё, что нужно для расчёта свободных слотов мастера на одну дату
type Day struct {
	Window WorkWindow
	// Explicit - явный список слотов мастера; если не пуст, Window не используется
	// Шаг явного списка берётся из самого списка (см. listStep), Step для него запасной
	Explicit        []types.TimeString
	Booked          []Occupied
	ServiceDuration int
	Step            int
}

// FreeSlots строит слоты дня и отфильтровывает занятые
func FreeSlots(day Day) ([]types.TimeString, error) {
	var all []types.TimeString
	step := day.Step
	if len(day.Explicit) > 0 {
		raw := make([]string, len(day.Explicit))
		for i, s := range day.Explicit {
			raw[i] = s.String()
		}
		normalized, err := NormalizeSlots(raw)
		if err != nil {
			return nil, err
		}
		all = normalized
		if step, err = listStep(all, day.Step); err != nil {
			return nil, err
		}
	} else {
		generated, err := GenerateSlots(day.Window, day.Step)
		if err != nil {
			return nil, err
		}
		all = generated
	}

	return FilterAvailable(all, day.Booked, day.ServiceDuration, step)
}

// listStep - минимальный интервал между соседними слотами явного списка
// Список из одного слота занимает fallback минут
func listStep(slots []types.TimeString, fallback int) (int, error) {
	if fallback <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidStep, fallback)
	}
	if len(slots) < 2 {
		return fallback, nil
	}

	step := 0
	prev, err := parseMinutes(slots[0])
	if err != nil {
		return 0, err
	}
	for _, s := range slots[1:] {
		m, err := parseMinutes(s)
		if err != nil {
			return 0, err
		}
		if gap := m - prev; gap > 0 && (step == 0 || gap < step) {
			step = gap
		}
		prev = m
	}
	if step == 0 {
		return fallback, nil
	}
	return step, nil
}

// NotBefore убирает слоты раньше cutoff (для сегодняшнего дня)
func NotBefore(slots []types.TimeString, cutoff types.TimeString) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if !s.IsBefore(cutoff) {
			result = append(result, s)
		}
	}
	return result
}

// BookableFrom оставляет слоты даты date, начинающиеся не раньше earliest
// earliest - текущее время плюс минимальное уведомление, в локации барбершопа
func BookableFrom(slots []types.TimeString, date, earliest time.Time) []types.TimeString {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	earliestDay := time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case day.Before(earliestDay):
		return []types.TimeString{}
	case day.After(earliestDay):
		return slots
	}

	minutes := earliest.Hour()*60 + earliest.Minute()
	if earliest.Second() > 0 || earliest.Nanosecond() > 0 {
		minutes++
	}
	cutoff, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		// 23:59:30 -> следующая минута уже завтра
		return []types.TimeString{}
	}
	return NotBefore(slots, cutoff)
}
