package get_settings

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, req *models.GetSettingsRequest) (*models.SettingsResponse, error)
	List(ctx context.Context, userID int64) (*models.SettingsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
