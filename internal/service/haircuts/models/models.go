package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

// Request модели

// CreateHaircutRequest запрос на добавление стрижки в каталог
// Цена и длительность приходят строками в свободной форме ("R$ 35,00", "40 min")
type CreateHaircutRequest struct {
	UserID   int64
	Name     string
	Price    string
	Duration string
}

// UpdateHaircutRequest запрос на изменение стрижки, nil - поле не меняется
type UpdateHaircutRequest struct {
	UserID    int64
	HaircutID int64
	Name      *string
	Price     *string
	Duration  *string
	Status    *string
}

// ListHaircutsRequest запрос каталога барбершопа
type ListHaircutsRequest struct {
	UserID int64
	Status *string
}

// Response модели

// HaircutResponse ответ с данными стрижки
type HaircutResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DisplayPrice    string    `json:"displayPrice"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HaircutListResponse ответ со списком стрижек
type HaircutListResponse struct {
	Haircuts []HaircutResponse `json:"haircuts"`
}

// FromDomainHaircut конвертирует domain модель в DTO
func FromDomainHaircut(h *domain.Haircut) *HaircutResponse {
	if h == nil {
		return nil
	}

	return &HaircutResponse{
		ID:              h.ID,
		Name:            h.Name,
		Price:           h.Price,
		DisplayPrice:    normalize.FormatPrice(h.Price),
		DurationMinutes: h.DurationMinutes,
		Status:          domain.FormatEntityStatus(h.Status),
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

// FromDomainHaircutList конвертирует список domain моделей в DTO
func FromDomainHaircutList(list []*domain.Haircut) *HaircutListResponse {
	resp := &HaircutListResponse{Haircuts: make([]HaircutResponse, 0, len(list))}
	for _, h := range list {
		if r := FromDomainHaircut(h); r != nil {
			resp.Haircuts = append(resp.Haircuts, *r)
		}
	}
	return resp
}
