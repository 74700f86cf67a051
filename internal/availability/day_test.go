package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestFreeSlots_GeneratedWindow(t *testing.T) {
	got, err := FreeSlots(Day{
		Window:          WorkWindow{Start: "08:00", End: "09:00"},
		Booked:          []Occupied{{Start: "08:20", DurationMinutes: 20}},
		ServiceDuration: 20,
		Step:            10,
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "08:40"}, got)
}

func TestFreeSlots_ExplicitListWins(t *testing.T) {
	got, err := FreeSlots(Day{
		Window:          WorkWindow{Start: "08:00", End: "18:00"},
		Explicit:        []types.TimeString{"10:10", "10:00", "10:00", "15:00"},
		ServiceDuration: 10,
		Step:            10,
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:10", "15:00"}, got)
}

func TestFreeSlots_ExplicitListRespectsDuration(t *testing.T) {
	got, err := FreeSlots(Day{
		Explicit:        []types.TimeString{"10:00", "10:10", "15:00"},
		ServiceDuration: 20,
		Step:            10,
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, got)
}

func TestFreeSlots_ExplicitHalfHourList(t *testing.T) {
	explicit := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	tests := []struct {
		name     string
		duration int
		booked   []Occupied
		want     []types.TimeString
	}{
		{"haircut fills one entry", 30, nil, explicit},
		{"haircut spans two entries", 60, nil, []types.TimeString{"09:00", "09:30", "10:00"}},
		{"booking removes its entry", 30, []Occupied{{Start: "09:30", DurationMinutes: 30}}, []types.TimeString{"09:00", "10:00", "10:30"}},
		{"off-grid booking blocks both neighbours", 30, []Occupied{{Start: "09:10", DurationMinutes: 30}}, []types.TimeString{"10:00", "10:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeSlots(Day{
				Explicit:        explicit,
				Booked:          tt.booked,
				ServiceDuration: tt.duration,
				Step:            10,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSlots_ExplicitListWithGap(t *testing.T) {
	got, err := FreeSlots(Day{
		Explicit:        []types.TimeString{"09:00", "09:30", "14:00", "14:30"},
		ServiceDuration: 60,
		Step:            10,
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, got)
}

func TestFreeSlots_SingleExplicitSlotUsesStep(t *testing.T) {
	got, err := FreeSlots(Day{
		Explicit:        []types.TimeString{"09:00"},
		ServiceDuration: 10,
		Step:            10,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, got)

	got, err = FreeSlots(Day{
		Explicit:        []types.TimeString{"09:00"},
		ServiceDuration: 20,
		Step:            10,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFreeSlots_InvalidStep(t *testing.T) {
	_, err := FreeSlots(Day{Window: WorkWindow{Start: "08:00", End: "09:00"}, ServiceDuration: 10})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestNotBefore(t *testing.T) {
	slots := []types.TimeString{"08:00", "08:10", "08:20", "08:30"}

	assert.Equal(t, []types.TimeString{"08:20", "08:30"}, NotBefore(slots, "08:20"))
	assert.Equal(t, slots, NotBefore(slots, "00:00"))
	assert.Empty(t, NotBefore(slots, "23:00"))
	assert.NotNil(t, NotBefore(slots, "23:00"))
}

func TestBookableFrom(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	slots := []types.TimeString{"08:00", "09:00", "10:00", "11:00"}
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, loc)

	tests := []struct {
		name     string
		earliest time.Time
		want     []types.TimeString
	}{
		{"earlier day keeps all", time.Date(2024, 3, 4, 22, 0, 0, 0, loc), slots},
		{"same day cuts", time.Date(2024, 3, 5, 9, 0, 0, 0, loc), []types.TimeString{"09:00", "10:00", "11:00"}},
		{"seconds round up", time.Date(2024, 3, 5, 9, 0, 30, 0, loc), []types.TimeString{"10:00", "11:00"}},
		{"notice spills past the day", time.Date(2024, 3, 6, 1, 0, 0, 0, loc), []types.TimeString{}},
		{"last second of the day", time.Date(2024, 3, 5, 23, 59, 30, 0, loc), []types.TimeString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookableFrom(slots, date, tt.earliest))
		})
	}
}
