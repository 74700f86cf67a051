package update_settings

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

type SettingsService interface {
	Upsert(ctx context.Context, req *models.UpsertSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
