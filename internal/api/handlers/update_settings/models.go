package update_settings

import (
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP модель запроса
// barberId не задан - настройки всего барбершопа
type UpdateSettingsRequest struct {
	BarberID                *int64 `json:"barberId,omitempty" validate:"omitempty,gt=0"`
	SlotStepMinutes         *int   `json:"slotStepMinutes,omitempty"`
	BufferMinutes           *int   `json:"bufferMinutes,omitempty"`
	AdvanceBookingDays      *int   `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int   `json:"minBookingNoticeMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64) *models.UpsertSettingsRequest {
	return &models.UpsertSettingsRequest{
		UserID:                  userID,
		BarberID:                r.BarberID,
		SlotStepMinutes:         r.SlotStepMinutes,
		BufferMinutes:           r.BufferMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
	}
}
