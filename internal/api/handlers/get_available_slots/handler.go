package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
)

const (
	msgInvalidShopID      = "некорректный ID барбершопа"
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidHaircutID   = "некорректный ID стрижки"
	msgMissingHaircutID   = "ID стрижки обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD или D/M"
	msgDateTooFar         = "дата слишком далеко в будущем"
	msgBarberNotFound     = "барбер не найден"
	msgBarberUnavailable  = "барбер не принимает записи"
	msgHaircutNotFound    = "стрижка не найдена"
	msgHaircutUnavailable = "стрижка недоступна"
)

const route = "GET /shops/{id}/barbers/{id}/available-slots"

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/barbers/{barberId}/available-slots
// Query params: haircutId (required), date (required, YYYY-MM-DD или D/M)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || shopID <= 0 {
		h.logger.Warn("%s - Invalid shop ID: %q", route, vars["shopId"])
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("%s - Invalid barber ID: %q", route, vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	query := r.URL.Query()

	haircutIDStr := query.Get("haircutId")
	if haircutIDStr == "" {
		h.logger.Warn("%s - Missing haircut ID", route)
		handlers.RespondBadRequest(w, msgMissingHaircutID)
		return
	}

	haircutID, err := strconv.ParseInt(haircutIDStr, 10, 64)
	if err != nil || haircutID <= 0 {
		h.logger.Warn("%s - Invalid haircut ID: %q", route, haircutIDStr)
		handlers.RespondBadRequest(w, msgInvalidHaircutID)
		return
	}

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("%s - Missing date", route)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(shopID, barberID, haircutID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("%s - Barber not found: shop_id=%d, barber_id=%d", route, shopID, barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrHaircutNotFound):
			h.logger.Warn("%s - Haircut not found: shop_id=%d, haircut_id=%d", route, shopID, haircutID)
			handlers.RespondNotFound(w, msgHaircutNotFound)

		case errors.Is(err, getAvailableSlots.ErrBarberUnavailable):
			h.logger.Warn("%s - Barber unavailable: shop_id=%d, barber_id=%d", route, shopID, barberID)
			handlers.RespondBadRequest(w, msgBarberUnavailable)

		case errors.Is(err, getAvailableSlots.ErrHaircutUnavailable):
			h.logger.Warn("%s - Haircut unavailable: shop_id=%d, haircut_id=%d", route, shopID, haircutID)
			handlers.RespondBadRequest(w, msgHaircutUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate), errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("%s - Invalid date: shop_id=%d, date=%q, error=%v", route, shopID, date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("%s - Date too far in future: shop_id=%d, date=%q", route, shopID, date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("%s - Failed to get slots: shop_id=%d, barber_id=%d, haircut_id=%d, error=%v",
				route, shopID, barberID, haircutID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Slots retrieved successfully: shop_id=%d, barber_id=%d, haircut_id=%d, slots_count=%d",
		route, shopID, barberID, haircutID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
