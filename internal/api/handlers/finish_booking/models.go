package finish_booking

import (
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
)

// StatusResponse HTTP модель ответа после смены статуса
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ToServiceRequest формирует запрос к сервису
func ToServiceRequest(userID, bookingID int64) *models.ChangeStatusRequest {
	return &models.ChangeStatusRequest{
		UserID:    userID,
		BookingID: bookingID,
	}
}
