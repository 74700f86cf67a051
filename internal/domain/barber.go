package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Barber - мастер барбершопа
type Barber struct {
	ID        int64
	UserID    int64
	Name      string
	WorkStart types.TimeString
	WorkEnd   types.TimeString
	// AvailableAt - явный список времени начала слотов.
	// Если не пуст, заменяет слоты, сгенерированные из WorkStart/WorkEnd
	AvailableAt  []types.TimeString
	Status       bool
	HaircutsDone int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive returns true if the barber accepts bookings
func (b *Barber) IsActive() bool {
	return b.Status
}

// HasExplicitSlots returns true if the barber has a hand-picked slot list
func (b *Barber) HasExplicitSlots() bool {
	return len(b.AvailableAt) > 0
}

// BarbersFilter фильтр списка барберов
type BarbersFilter struct {
	UserID int64
	Status *bool // nil - все барберы
}
