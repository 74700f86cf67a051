package shops

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/shops/models"
)

type ShopService interface {
	GetBySlug(ctx context.Context, slug string) (*models.ShopResponse, error)
	GetCatalog(ctx context.Context, shopID int64) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
