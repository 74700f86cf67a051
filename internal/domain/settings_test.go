package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusFinished.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestBooking_Lifecycle(t *testing.T) {
	b := &Booking{Status: StatusScheduled}
	assert.True(t, b.OccupiesSlots())
	assert.True(t, b.CanBeFinished())
	assert.True(t, b.CanBeCancelled())

	b.Status = StatusCancelled
	assert.False(t, b.OccupiesSlots())
	assert.False(t, b.CanBeFinished())
	assert.False(t, b.CanBeCancelled())
}

func TestSlotSettings(t *testing.T) {
	barberID := int64(3)
	s := &SlotSettings{BufferMinutes: 10, BarberID: &barberID}

	assert.Equal(t, 50, s.BlockedMinutes(40))
	assert.False(t, s.IsShopWide())
	assert.False(t, s.HasAdvanceBookingLimit())
}

func TestParseEntityStatus(t *testing.T) {
	on, err := ParseEntityStatus(" Enabled ")
	assert.NoError(t, err)
	assert.True(t, on)

	off, err := ParseEntityStatus("disabled")
	assert.NoError(t, err)
	assert.False(t, off)

	_, err = ParseEntityStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidEntityStatus)

	assert.Equal(t, EntityEnabled, FormatEntityStatus(true))
	assert.Equal(t, EntityDisabled, FormatEntityStatus(false))
}
