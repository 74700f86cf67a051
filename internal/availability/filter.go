package availability

import (
	"fmt"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Occupied существующее бронирование, занимающее слоты начиная с Start
type Occupied struct {
	Start           types.TimeString
	DurationMinutes int
}

// Occupancy количество подряд идущих слотов, которые занимает услуга длительностью duration
func Occupancy(duration, step int) int {
	if duration <= 0 || step <= 0 {
		return 0
	}
	return (duration + step - 1) / step
}

// FilterAvailable оставляет слоты, на которые можно записать услугу длительностью serviceDuration
//
// Кандидат доступен, если:
//   - все Occupancy(serviceDuration, step) слотов, начиная с него, присутствуют в allSlots
//     (запись не выходит за время закрытия и не попадает в разрыв расписания);
//   - ни один из этих слотов не пересекается с диапазоном, занятым существующей записью.
//
// Порядок allSlots сохраняется. Функция чистая.
func FilterAvailable(allSlots []types.TimeString, booked []Occupied, serviceDuration, step int) ([]types.TimeString, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	if serviceDuration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, serviceDuration)
	}

	present := make(map[int]struct{}, len(allSlots))
	starts := make([]int, len(allSlots))
	for i, slot := range allSlots {
		m, err := parseMinutes(slot)
		if err != nil {
			return nil, err
		}
		present[m] = struct{}{}
		starts[i] = m
	}

	blocked, err := blockedMinutes(booked, step)
	if err != nil {
		return nil, err
	}

	occupancy := Occupancy(serviceDuration, step)
	result := make([]types.TimeString, 0, len(allSlots))

	for i, start := range starts {
		if fits(start, occupancy, step, present, blocked) {
			result = append(result, allSlots[i])
		}
	}

	return result, nil
}

// blockedMinutes возвращает занятые интервалы [start, end) в минутах от полуночи
func blockedMinutes(booked []Occupied, step int) ([][2]int, error) {
	intervals := make([][2]int, 0, len(booked))
	for _, b := range booked {
		start, err := parseMinutes(b.Start)
		if err != nil {
			return nil, err
		}
		occ := Occupancy(b.DurationMinutes, step)
		if occ == 0 {
			// Запись без длительности всё равно занимает свой слот
			occ = 1
		}
		intervals = append(intervals, [2]int{start, start + occ*step})
	}
	return intervals, nil
}

func fits(start, occupancy, step int, present map[int]struct{}, blocked [][2]int) bool {
	for k := 0; k < occupancy; k++ {
		if _, ok := present[start+k*step]; !ok {
			return false
		}
	}

	end := start + occupancy*step
	for _, b := range blocked {
		// Полуоткрытые интервалы: [start,end) и [b0,b1) пересекаются iff start < b1 && b0 < end
		if start < b[1] && b[0] < end {
			return false
		}
	}
	return true
}
