package get_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

const (
	msgMissingUserID   = "требуется авторизация"
	msgInvalidBarberID = "некорректный ID барбера"
	msgBarberNotFound  = "барбер не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings?barberId=
// Возвращает действующие настройки с учётом иерархии: барбер > барбершоп > значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetSettingsRequest{UserID: userID}

	if raw := r.URL.Query().Get("barberId"); raw != "" {
		barberID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || barberID <= 0 {
			h.logger.Warn("GET /settings - Invalid barber ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidBarberID)
			return
		}
		req.BarberID = &barberID
	}

	result, err := h.service.Get(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrBarberNotFound):
			h.logger.Warn("GET /settings - Barber not found: user_id=%d, barber_id=%v", userID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("GET /settings - Access denied: user_id=%d, barber_id=%v", userID, req.BarberID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /settings - Failed to get settings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings - Settings retrieved: user_id=%d, level=%s", userID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/settings/all
// Все сохранённые уровни настроек барбершопа
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /settings/all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /settings/all - Failed to list settings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
