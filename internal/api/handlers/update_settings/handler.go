package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/settings"
)

const (
	msgMissingUserID      = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные значения настроек"
	msgBarberNotFound     = "барбер не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid settings: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSettings+": "+err.Error())

		case errors.Is(err, settings.ErrBarberNotFound):
			h.logger.Warn("PUT /settings - Barber not found: user_id=%d, barber_id=%v", userID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("PUT /settings - Access denied: user_id=%d, barber_id=%v", userID, req.BarberID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /settings - Failed to save settings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings saved: user_id=%d, level=%s, step=%d, buffer=%d",
		userID, result.Level, result.SlotStepMinutes, result.BufferMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
