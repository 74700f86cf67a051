package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestGenerateSlots_MorningWindow(t *testing.T) {
	slots, err := GenerateSlots(WorkWindow{Start: "08:00", End: "12:00"}, 10)
	require.NoError(t, err)

	require.Len(t, slots, 24)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("08:10"), slots[1])
	assert.Equal(t, types.TimeString("11:50"), slots[len(slots)-1])
}

func TestGenerateSlots_StepProperties(t *testing.T) {
	windows := []WorkWindow{
		{Start: "08:00", End: "12:00"},
		{Start: "09:15", End: "18:40"},
		{Start: "00:00", End: "23:59"},
		{Start: "10:00", End: "10:05"},
	}
	steps := []int{5, 10, 15, 25, 60}

	for _, w := range windows {
		for _, step := range steps {
			slots, err := GenerateSlots(w, step)
			require.NoError(t, err)
			require.NotEmpty(t, slots)

			start, _ := w.Start.Minutes()
			end, _ := w.End.Minutes()
			prev := -1
			for _, s := range slots {
				m, err := s.Minutes()
				require.NoError(t, err)
				assert.GreaterOrEqual(t, m, start)
				assert.Less(t, m, end)
				if prev >= 0 {
					assert.Equal(t, step, m-prev)
				}
				prev = m
			}
		}
	}
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	slots, err := GenerateSlots(WorkWindow{Start: "12:00", End: "12:00"}, 10)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	slots, err = GenerateSlots(WorkWindow{Start: "18:00", End: "09:00"}, 10)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Errors(t *testing.T) {
	_, err := GenerateSlots(WorkWindow{Start: "08:00", End: "12:00"}, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = GenerateSlots(WorkWindow{Start: "8h", End: "12:00"}, 10)
	assert.ErrorIs(t, err, ErrParse)

	_, err = GenerateSlots(WorkWindow{Start: "08:00", End: "noon"}, 10)
	assert.ErrorIs(t, err, ErrParse)
}

func TestNormalizeSlots(t *testing.T) {
	slots, err := NormalizeSlots([]string{"10:00", "9:00", "09:30", "10:00"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, slots)

	_, err = NormalizeSlots([]string{"09:00", "later"})
	assert.ErrorIs(t, err, ErrParse)
}
