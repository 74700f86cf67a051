package domain

import "time"

// SlotSettings - настройки расчёта слотов
// Иерархия:
// 1. Настройки конкретного барбера (user_id, barber_id)
// 2. Настройки всего барбершопа (user_id, NULL)
// 3. Значения по умолчанию из конфигурации сервиса
type SlotSettings struct {
	ID                      int64
	UserID                  int64
	BarberID                *int64 // NULL = настройки для всех барберов
	SlotStepMinutes         int
	BufferMinutes           int // добавляется к длительности стрижки
	AdvanceBookingDays      int // 0 = без ограничения
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsShopWide returns true if the settings apply to every barber of the shop
func (s *SlotSettings) IsShopWide() bool {
	return s.BarberID == nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (s *SlotSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// BlockedMinutes - сколько минут занимает стрижка вместе с буфером
func (s *SlotSettings) BlockedMinutes(haircutDuration int) int {
	return haircutDuration + s.BufferMinutes
}
