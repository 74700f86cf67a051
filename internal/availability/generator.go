package availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// WorkWindow рабочее окно мастера на день: [Start, End)
type WorkWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// GenerateSlots генерирует упорядоченный список начал слотов с шагом step минут
// Слоты начинаются в window.Start и строго меньше window.End
// Если Start >= End - возвращает пустой список без ошибки
func GenerateSlots(window WorkWindow, step int) ([]types.TimeString, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}

	start, err := parseMinutes(window.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseMinutes(window.End)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	for m := start; m < end; m += step {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// NormalizeSlots валидирует явный список слотов мастера (available_at),
// убирает дубликаты и сортирует по возрастанию
func NormalizeSlots(raw []string) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{}, len(raw))
	slots := make([]types.TimeString, 0, len(raw))

	for _, s := range raw {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].IsBefore(slots[j]) })
	return slots, nil
}

func parseMinutes(t types.TimeString) (int, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m, nil
}
