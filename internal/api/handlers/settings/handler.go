package settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	settingsService "github.com/m04kA/SMC-SalonScheduler/internal/service/settings"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/settings/models"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "изменять настройки салона может только администратор"
	msgInvalidInput       = "некорректные настройки"
)

// Handler настройки салона и личные настройки пользователя
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

// GetBusiness GET /api/v1/settings
func (h *Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.GetBusiness(r.Context(), viewer)
	if err != nil {
		h.respondError(w, "GET /settings", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateBusiness PUT /api/v1/settings
func (h *Handler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.BusinessSettings
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBusiness(r.Context(), viewer, &req)
	if err != nil {
		h.respondError(w, "PUT /settings", err)
		return
	}

	h.logger.Info("PUT /settings - Settings updated successfully: user_id=%s", viewer.Identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetPreferences GET /api/v1/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.GetPreferences(r.Context(), viewer)
	if err != nil {
		h.respondError(w, "GET /preferences", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdatePreferences PUT /api/v1/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.Preferences
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePreferences(r.Context(), viewer, &req)
	if err != nil {
		h.respondError(w, "PUT /preferences", err)
		return
	}

	h.logger.Info("PUT /preferences - Preferences updated successfully: user_id=%s", viewer.Identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, settingsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, settingsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
