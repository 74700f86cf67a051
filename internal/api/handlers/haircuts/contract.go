package haircuts

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/haircuts/models"
)

type HaircutService interface {
	Create(ctx context.Context, req *models.CreateHaircutRequest) (*models.HaircutResponse, error)
	GetByID(ctx context.Context, id, userID int64) (*models.HaircutResponse, error)
	List(ctx context.Context, req *models.ListHaircutsRequest) (*models.HaircutListResponse, error)
	Update(ctx context.Context, req *models.UpdateHaircutRequest) (*models.HaircutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
