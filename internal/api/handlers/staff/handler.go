package staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	staffService "github.com/m04kA/SMC-SalonScheduler/internal/service/staff"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/staff/models"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgUserAlreadyLinked  = "учетная запись уже привязана к другому сотруднику"
	msgLastAdmin          = "в салоне должен остаться хотя бы один администратор"
	msgCannotDeleteSelf   = "нельзя удалить собственную запись"
	msgStaffInUse         = "у сотрудника есть записи, удаление невозможно"
)

// Handler управление сотрудниками салона
type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/staff
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.List(r.Context(), viewer)
	if err != nil {
		h.respondError(w, "GET /staff", err)
		return
	}

	h.logger.Info("GET /staff - Staff retrieved successfully: count=%d", len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/staff/{staffId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetByID(r.Context(), viewer, id)
	if err != nil {
		h.respondError(w, "GET /staff/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), viewer, &req)
	if err != nil {
		h.respondError(w, "POST /staff", err)
		return
	}

	h.logger.Info("POST /staff - Staff created successfully: staff_id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PATCH /api/v1/staff/{staffId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("PATCH /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req models.UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), viewer, id, &req)
	if err != nil {
		h.respondError(w, "PATCH /staff/{id}", err)
		return
	}

	h.logger.Info("PATCH /staff/{id} - Staff updated successfully: staff_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/staff/{staffId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), viewer, id); err != nil {
		h.respondError(w, "DELETE /staff/{id}", err)
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff deleted successfully: staff_id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, staffService.ErrStaffNotFound):
		h.logger.Warn("%s - Staff not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, staffService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, staffService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, staffService.ErrUserAlreadyLinked):
		h.logger.Warn("%s - User already linked", route)
		handlers.RespondConflict(w, msgUserAlreadyLinked)

	case errors.Is(err, staffService.ErrLastAdmin):
		h.logger.Warn("%s - Last admin protected", route)
		handlers.RespondConflict(w, msgLastAdmin)

	case errors.Is(err, staffService.ErrCannotDeleteSelf):
		h.logger.Warn("%s - Self deletion rejected", route)
		handlers.RespondConflict(w, msgCannotDeleteSelf)

	case errors.Is(err, staffService.ErrStaffInUse):
		h.logger.Warn("%s - Staff in use", route)
		handlers.RespondConflict(w, msgStaffInUse)

	default:
		h.logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
