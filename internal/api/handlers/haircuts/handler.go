package haircuts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/haircuts"
	"github.com/m04kA/SMC-BarberService/internal/service/haircuts/models"
)

const (
	msgMissingUserID      = "требуется авторизация"
	msgInvalidHaircutID   = "некорректный ID стрижки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHaircut     = "некорректные данные стрижки"
	msgNotFound           = "стрижка не найдена"
	msgForbidden          = "доступ запрещен"
)

// Handler каталог стрижек барбершопа
type Handler struct {
	service HaircutService
	logger  Logger
}

func NewHandler(service HaircutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/haircuts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /haircuts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateHaircutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /haircuts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		h.respondError(w, "POST /haircuts", err)
		return
	}

	h.logger.Info("POST /haircuts - Haircut created: haircut_id=%d, duration=%d, price=%.2f",
		result.ID, result.DurationMinutes, result.Price)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/haircuts?status=enabled|disabled
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /haircuts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.ListHaircutsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /haircuts", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/haircuts/{haircutId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, haircutID, ok := h.ids(w, r, "GET /haircuts/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), haircutID, userID)
	if err != nil {
		h.respondError(w, "GET /haircuts/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/haircuts/{haircutId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, haircutID, ok := h.ids(w, r, "PUT /haircuts/{id}")
	if !ok {
		return
	}

	var req UpdateHaircutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /haircuts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, haircutID))
	if err != nil {
		h.respondError(w, "PUT /haircuts/{id}", err)
		return
	}

	h.logger.Info("PUT /haircuts/{id} - Haircut updated: haircut_id=%d, status=%s", haircutID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) ids(w http.ResponseWriter, r *http.Request, route string) (int64, int64, bool) {
	raw := mux.Vars(r)["haircutId"]
	haircutID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || haircutID <= 0 {
		h.logger.Warn("%s - Invalid haircut ID: %q", route, raw)
		handlers.RespondBadRequest(w, msgInvalidHaircutID)
		return 0, 0, false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return userID, haircutID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, haircuts.ErrInvalidInput):
		// Ошибка разбора цены или длительности возвращается клиенту как есть
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidHaircut+": "+err.Error())

	case errors.Is(err, haircuts.ErrHaircutNotFound):
		h.logger.Warn("%s - Haircut not found: %v", route, err)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, haircuts.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
