package schedule_requests

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	requestsService "github.com/m04kA/SMC-SalonScheduler/internal/service/schedulerequests"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/schedulerequests/models"
)

const (
	msgMissingSession   = "пользователь не авторизован"
	msgInvalidRequestID = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
	msgForbidden        = "доступ запрещен"
	msgAlreadyDecided   = "заявка уже рассмотрена"
	msgInvalidInput     = "некорректный статус заявки"
)

// Handler просмотр и рассмотрение заявок на выходной
type Handler struct {
	service ScheduleRequestService
	logger  Logger
}

func NewHandler(service ScheduleRequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/schedule-requests
// Query params: status (pending|approved|rejected, опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), viewer, status)
	if err != nil {
		h.respondError(w, "GET /schedule-requests", err)
		return
	}

	h.logger.Info("GET /schedule-requests - Requests retrieved successfully: count=%d, role=%s",
		len(result.Requests), viewer.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Approve POST /api/v1/schedule-requests/{requestId}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "POST /schedule-requests/{id}/approve", h.service.Approve)
}

// Reject POST /api/v1/schedule-requests/{requestId}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "POST /schedule-requests/{id}/reject", h.service.Reject)
}

func (h *Handler) decide(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	decision func(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ScheduleRequestResponse, error),
) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "requestId")
	if err != nil {
		h.logger.Warn("%s - Invalid request ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := decision(r.Context(), viewer, id)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Request decided: request_id=%s, status=%s", route, id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, requestsService.ErrRequestNotFound):
		h.logger.Warn("%s - Request not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, requestsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, requestsService.ErrAlreadyDecided):
		h.logger.Warn("%s - Already decided", route)
		handlers.RespondConflict(w, msgAlreadyDecided)

	case errors.Is(err, requestsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
