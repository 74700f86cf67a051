package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidShopID      = "некорректный ID барбершопа"
	msgMissingUserID      = "требуется авторизация"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD или D/M"
	msgInvalidTime        = "некорректное время начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotAvailable   = "выбранное время недоступно"
	msgBarberNotFound     = "барбер не найден"
	msgBarberUnavailable  = "барбер не принимает записи"
	msgHaircutNotFound    = "стрижка не найдена"
	msgHaircutUnavailable = "стрижка недоступна"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/bookings
// Запись клиента без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	const route = "POST /shops/{id}/bookings"

	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil || shopID <= 0 {
		h.logger.Warn("%s - Invalid shop ID: %v", route, mux.Vars(r)["shopId"])
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	h.create(w, r, route, shopID)
}

// HandleStaff POST /api/v1/bookings
// Запись, созданная сотрудником из панели управления
func (h *Handler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	const route = "POST /bookings"

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	h.create(w, r, route, userID)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, route string, shopID int64) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(shopID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: shop_id=%d, barber_id=%d, date=%s, time=%s",
				route, shopID, req.BarberID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("%s - Barber not found: shop_id=%d, barber_id=%d", route, shopID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrHaircutNotFound):
			h.logger.Warn("%s - Haircut not found: shop_id=%d, haircut_id=%d", route, shopID, req.HaircutID)
			handlers.RespondNotFound(w, msgHaircutNotFound)

		case errors.Is(err, createBooking.ErrBarberUnavailable):
			h.logger.Warn("%s - Barber unavailable: shop_id=%d, barber_id=%d", route, shopID, req.BarberID)
			handlers.RespondBadRequest(w, msgBarberUnavailable)

		case errors.Is(err, createBooking.ErrHaircutUnavailable):
			h.logger.Warn("%s - Haircut unavailable: shop_id=%d, haircut_id=%d", route, shopID, req.HaircutID)
			handlers.RespondBadRequest(w, msgHaircutUnavailable)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("%s - Invalid date: shop_id=%d, date=%s", route, shopID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("%s - Date too far in future: shop_id=%d, date=%s", route, shopID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("%s - Invalid time: shop_id=%d, time=%s", route, shopID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: shop_id=%d, error=%v", route, shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to create booking: shop_id=%d, error=%v", route, shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%d, shop_id=%d, barber_id=%d",
		route, result.ID, shopID, result.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
