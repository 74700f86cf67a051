package get_available_slots

import (
	"github.com/m04kA/SMC-BarberService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

// AvailableSlotsResponse HTTP модель ответа
// Slots всегда сериализуется как массив, пустой день отдаётся как "slots": []
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	DisplayDate     string   `json:"displayDate"`
	BarberID        int64    `json:"barberId"`
	HaircutID       int64    `json:"haircutId"`
	StepMinutes     int      `json:"stepMinutes"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case
func ToUseCaseRequest(shopID, barberID, haircutID int64, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ShopID:    shopID,
		BarberID:  barberID,
		HaircutID: haircutID,
		Date:      date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DisplayDate:     normalize.FormatDisplayDate(resp.Date),
		BarberID:        resp.BarberID,
		HaircutID:       resp.HaircutID,
		StepMinutes:     resp.StepMinutes,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
