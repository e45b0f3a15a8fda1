package clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	clientsService "github.com/m04kA/SMC-SalonScheduler/internal/service/clients"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/clients/models"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные клиента: имя обязательно"
	msgClientInUse        = "у клиента есть записи, удаление невозможно"
)

// Handler CRUD клиентов салона
type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/clients
// Query params: search (по имени, телефону или email, опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.List(r.Context(), viewer, r.URL.Query().Get("search"))
	if err != nil {
		h.respondError(w, "GET /clients", err)
		return
	}

	h.logger.Info("GET /clients - Clients retrieved successfully: count=%d", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/clients/{clientId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetByID(r.Context(), viewer, id)
	if err != nil {
		h.respondError(w, "GET /clients/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), viewer, &req)
	if err != nil {
		h.respondError(w, "POST /clients", err)
		return
	}

	h.logger.Info("POST /clients - Client created successfully: client_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/clients/{clientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), viewer, id, &req)
	if err != nil {
		h.respondError(w, "PUT /clients/{id}", err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated successfully: client_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/clients/{clientId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.service.Delete(r.Context(), viewer, id); err != nil {
		h.respondError(w, "DELETE /clients/{id}", err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted successfully: client_id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, clientsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, clientsService.ErrClientInUse):
		h.logger.Warn("%s - Client in use", route)
		handlers.RespondConflict(w, msgClientInUse)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
