package barbers

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

type BarberService interface {
	Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error)
	GetByID(ctx context.Context, id, userID int64) (*models.BarberResponse, error)
	List(ctx context.Context, req *models.ListBarbersRequest) (*models.BarberListResponse, error)
	Update(ctx context.Context, req *models.UpdateBarberRequest) (*models.BarberResponse, error)
	Disable(ctx context.Context, id, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
