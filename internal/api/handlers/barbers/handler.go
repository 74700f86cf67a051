package barbers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/barbers"
	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

const (
	msgMissingUserID      = "требуется авторизация"
	msgInvalidBarberID    = "некорректный ID барбера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBarber      = "некорректные данные барбера"
	msgNotFound           = "барбер не найден"
	msgForbidden          = "доступ запрещен"
)

// Handler управление барберами из панели барбершопа
type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/barbers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "POST /barbers")
	if !ok {
		return
	}

	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		h.respondError(w, "POST /barbers", err)
		return
	}

	h.logger.Info("POST /barbers - Barber created: barber_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/barbers?status=enabled|disabled
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "GET /barbers")
	if !ok {
		return
	}

	req := &models.ListBarbersRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /barbers", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/barbers/{barberId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, barberID, ok := h.ids(w, r, "GET /barbers/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), barberID, userID)
	if err != nil {
		h.respondError(w, "GET /barbers/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/barbers/{barberId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, barberID, ok := h.ids(w, r, "PUT /barbers/{id}")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, barberID))
	if err != nil {
		h.respondError(w, "PUT /barbers/{id}", err)
		return
	}

	h.logger.Info("PUT /barbers/{id} - Barber updated: barber_id=%d, user_id=%d", barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Disable DELETE /api/v1/barbers/{barberId}
// Барбер не удаляется, а выключается: его записи остаются в истории
func (h *Handler) Disable(w http.ResponseWriter, r *http.Request) {
	userID, barberID, ok := h.ids(w, r, "DELETE /barbers/{id}")
	if !ok {
		return
	}

	if err := h.service.Disable(r.Context(), barberID, userID); err != nil {
		h.respondError(w, "DELETE /barbers/{id}", err)
		return
	}

	h.logger.Info("DELETE /barbers/{id} - Barber disabled: barber_id=%d, user_id=%d", barberID, userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
	}
	return userID, ok
}

func (h *Handler) ids(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	raw := mux.Vars(r)["barberId"]
	barberID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || barberID <= 0 {
		h.logger.Warn("%s - Invalid barber ID: %q", route, raw)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return 0, 0, false
	}

	userID, ok := h.userID(w, r, route)
	return userID, barberID, ok
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, barbers.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBarber+": "+err.Error())

	case errors.Is(err, barbers.ErrBarberNotFound):
		h.logger.Warn("%s - Barber not found: %v", route, err)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, barbers.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
