package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Уровень, с которого взяты настройки
const (
	LevelBarber  = "barber"
	LevelShop    = "shop"
	LevelDefault = "default"
)

// Request модели

// GetSettingsRequest запрос действующих настроек
type GetSettingsRequest struct {
	UserID   int64
	BarberID *int64 // nil - настройки всего барбершопа
}

// UpsertSettingsRequest запрос на создание или изменение настроек уровня
// Все поля значений опциональны - незаданные берутся из действующих настроек
type UpsertSettingsRequest struct {
	UserID                  int64
	BarberID                *int64
	SlotStepMinutes         *int
	BufferMinutes           *int
	AdvanceBookingDays      *int
	MinBookingNoticeMinutes *int
}

// ApplyTo применяет заданные поля к настройкам
func (r *UpsertSettingsRequest) ApplyTo(s *domain.SlotSettings) {
	if r.SlotStepMinutes != nil {
		s.SlotStepMinutes = *r.SlotStepMinutes
	}
	if r.BufferMinutes != nil {
		s.BufferMinutes = *r.BufferMinutes
	}
	if r.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		s.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
}

// Response модели

// SettingsResponse действующие настройки и уровень, откуда они взяты
type SettingsResponse struct {
	ID                      int64     `json:"id,omitempty"`
	BarberID                *int64    `json:"barberId,omitempty"`
	Level                   string    `json:"level"`
	SlotStepMinutes         int       `json:"slotStepMinutes"`
	BufferMinutes           int       `json:"bufferMinutes"`
	AdvanceBookingDays      int       `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int       `json:"minBookingNoticeMinutes"`
	CreatedAt               time.Time `json:"createdAt,omitempty"`
	UpdatedAt               time.Time `json:"updatedAt,omitempty"`
}

// SettingsListResponse все настройки барбершопа
type SettingsListResponse struct {
	Settings []SettingsResponse `json:"settings"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SlotSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		ID:                      s.ID,
		BarberID:                s.BarberID,
		Level:                   LevelOf(s),
		SlotStepMinutes:         s.SlotStepMinutes,
		BufferMinutes:           s.BufferMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

// FromDomainSettingsList конвертирует список domain моделей в DTO
func FromDomainSettingsList(list []*domain.SlotSettings) *SettingsListResponse {
	resp := &SettingsListResponse{Settings: make([]SettingsResponse, 0, len(list))}
	for _, s := range list {
		if r := FromDomainSettings(s); r != nil {
			resp.Settings = append(resp.Settings, *r)
		}
	}
	return resp
}

// LevelOf возвращает уровень иерархии настроек (для ответа и логов)
// Настройки без ID - значения по умолчанию из конфигурации сервиса
func LevelOf(s *domain.SlotSettings) string {
	switch {
	case s.ID == 0:
		return LevelDefault
	case s.BarberID != nil:
		return LevelBarber
	default:
		return LevelShop
	}
}
