package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модели

// CreateBarberRequest запрос на добавление барбера
type CreateBarberRequest struct {
	UserID      int64
	Name        string
	WorkStart   string   // "08:00"
	WorkEnd     string   // "18:00"
	AvailableAt []string // явный список слотов, может быть пустым
}

// UpdateBarberRequest запрос на изменение барбера, nil - поле не меняется
type UpdateBarberRequest struct {
	UserID      int64
	BarberID    int64
	Name        *string
	WorkStart   *string
	WorkEnd     *string
	AvailableAt *[]string
	Status      *string // "enabled" / "disabled"
}

// ListBarbersRequest запрос на получение барберов барбершопа
type ListBarbersRequest struct {
	UserID int64
	Status *string
}

// Response модели

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	WorkStart    string    `json:"workStart"`
	WorkEnd      string    `json:"workEnd"`
	AvailableAt  []string  `json:"availableAt"`
	Status       string    `json:"status"`
	HaircutsDone int       `json:"haircutsDone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// FromDomainBarber конвертирует domain модель в DTO
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	if b == nil {
		return nil
	}

	slots := make([]string, 0, len(b.AvailableAt))
	for _, s := range b.AvailableAt {
		slots = append(slots, s.String())
	}

	return &BarberResponse{
		ID:           b.ID,
		Name:         b.Name,
		WorkStart:    b.WorkStart.String(),
		WorkEnd:      b.WorkEnd.String(),
		AvailableAt:  slots,
		Status:       domain.FormatEntityStatus(b.Status),
		HaircutsDone: b.HaircutsDone,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{Barbers: make([]BarberResponse, 0, len(barbers))}
	for _, b := range barbers {
		if r := FromDomainBarber(b); r != nil {
			resp.Barbers = append(resp.Barbers, *r)
		}
	}
	return resp
}
