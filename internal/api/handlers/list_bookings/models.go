package list_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Дата и статус проверяются сервисом, здесь разбирается только barberId
func ToServiceRequest(userID int64, dateStr, barberIDStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		UserID: userID,
	}

	if dateStr != "" {
		req.Date = &dateStr
	}

	if barberIDStr != "" {
		barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
		if err != nil || barberID <= 0 {
			return nil, fmt.Errorf("invalid barberId: %q", barberIDStr)
		}
		req.BarberID = &barberID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
