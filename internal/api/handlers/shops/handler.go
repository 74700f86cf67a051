package shops

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/shops"
)

const (
	msgInvalidShopID = "некорректный ID барбершопа"
	msgShopNotFound  = "барбершоп не найден"
)

// Handler публичные страницы барбершопа: поиск по адресу и каталог для записи
type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetBySlug GET /api/v1/shops/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, shops.ErrShopNotFound) {
			h.logger.Warn("GET /shops/{slug} - Shop not found: slug=%q", slug)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}
		h.logger.Error("GET /shops/{slug} - Failed to get shop: slug=%q, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetCatalog GET /api/v1/shops/{shopId}/catalog
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil || shopID <= 0 {
		h.logger.Warn("GET /shops/{id}/catalog - Invalid shop ID: %q", mux.Vars(r)["shopId"])
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.GetCatalog(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, shops.ErrShopNotFound) {
			h.logger.Warn("GET /shops/{id}/catalog - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}
		h.logger.Error("GET /shops/{id}/catalog - Failed to get catalog: shop_id=%d, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{id}/catalog - Catalog retrieved: shop_id=%d, barbers=%d, haircuts=%d",
		shopID, len(result.Barbers), len(result.Haircuts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
