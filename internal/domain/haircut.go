package domain

import "time"

// Haircut - услуга из каталога барбершопа
type Haircut struct {
	ID              int64
	UserID          int64
	Name            string
	Price           float64
	DurationMinutes int
	Status          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the haircut can be booked
func (h *Haircut) IsActive() bool {
	return h.Status
}

// HaircutsFilter фильтр каталога стрижек
type HaircutsFilter struct {
	UserID int64
	Status *bool
}
