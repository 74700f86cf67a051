package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req *models.ChangeStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
