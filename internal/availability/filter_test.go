package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func morning(t *testing.T) []types.TimeString {
	t.Helper()
	slots, err := GenerateSlots(WorkWindow{Start: "08:00", End: "12:00"}, 10)
	require.NoError(t, err)
	return slots
}

func TestOccupancy(t *testing.T) {
	assert.Equal(t, 4, Occupancy(40, 10))
	assert.Equal(t, 5, Occupancy(41, 10))
	assert.Equal(t, 1, Occupancy(5, 10))
	assert.Equal(t, 0, Occupancy(0, 10))
	assert.Equal(t, 0, Occupancy(30, 0))
}

func TestFilterAvailable_RemovesBookedRange(t *testing.T) {
	booked := []Occupied{{Start: "09:00", DurationMinutes: 40}}

	result, err := FilterAvailable(morning(t), booked, 40, 10)
	require.NoError(t, err)

	for _, s := range []types.TimeString{"09:00", "09:10", "09:20", "09:30"} {
		assert.NotContains(t, result, s)
	}
	// 08:30 + 40 минут упирается в 09:10 - пересечение с записью
	assert.NotContains(t, result, types.TimeString("08:30"))
	// 08:20 заканчивается ровно в 09:00 - граница не считается пересечением
	assert.Contains(t, result, types.TimeString("08:20"))
	assert.Contains(t, result, types.TimeString("09:40"))
}

func TestFilterAvailable_DoesNotRunPastClosing(t *testing.T) {
	result, err := FilterAvailable(morning(t), nil, 30, 10)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("11:30"), result[len(result)-1])
	assert.NotContains(t, result, types.TimeString("11:40"))
	assert.NotContains(t, result, types.TimeString("11:50"))
}

func TestFilterAvailable_RespectsGaps(t *testing.T) {
	// Перерыв 10:00-10:30: слотов 10:00, 10:10, 10:20 нет
	all := []types.TimeString{"09:30", "09:40", "09:50", "10:30", "10:40"}

	result, err := FilterAvailable(all, nil, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:30", "09:40", "10:30"}, result)
}

func TestFilterAvailable_PreservesOrderAndIsIdempotent(t *testing.T) {
	booked := []Occupied{
		{Start: "08:30", DurationMinutes: 20},
		{Start: "10:00", DurationMinutes: 45},
	}

	first, err := FilterAvailable(morning(t), booked, 30, 10)
	require.NoError(t, err)
	second, err := FilterAvailable(morning(t), booked, 30, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].IsBefore(first[i]))
	}
}

func TestFilterAvailable_BookedSlotsNeverReturned(t *testing.T) {
	booked := []Occupied{
		{Start: "08:00", DurationMinutes: 10},
		{Start: "09:10", DurationMinutes: 35},
		{Start: "11:00", DurationMinutes: 60},
	}

	for _, duration := range []int{10, 25, 40, 90} {
		result, err := FilterAvailable(morning(t), booked, duration, 10)
		require.NoError(t, err)

		for _, b := range booked {
			start, _ := b.Start.Minutes()
			for k := 0; k < Occupancy(b.DurationMinutes, 10); k++ {
				slot, err := types.NewTimeStringFromMinutes(start + k*10)
				require.NoError(t, err)
				assert.NotContains(t, result, slot)
			}
		}
	}
}

func TestFilterAvailable_AllTaken(t *testing.T) {
	booked := []Occupied{{Start: "08:00", DurationMinutes: 240}}

	result, err := FilterAvailable(morning(t), booked, 10, 10)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterAvailable_Errors(t *testing.T) {
	_, err := FilterAvailable(morning(t), nil, 30, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = FilterAvailable(morning(t), nil, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = FilterAvailable([]types.TimeString{"8am"}, nil, 30, 10)
	assert.ErrorIs(t, err, ErrParse)

	_, err = FilterAvailable(morning(t), []Occupied{{Start: "x", DurationMinutes: 30}}, 30, 10)
	assert.ErrorIs(t, err, ErrParse)
}
