package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	deleteAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/delete_appointment"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidAppointment = "некорректный ID записи"
	msgNotFound           = "запись не найдена"
	msgForbidden          = "доступ запрещен"
	msgNotEditable        = "запись больше нельзя удалить"
)

type Handler struct {
	useCase DeleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase DeleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointment)
		return
	}

	err = h.useCase.Execute(r.Context(), &deleteAppointment.Request{Viewer: viewer, ID: id})
	if err != nil {
		switch {
		case errors.Is(err, deleteAppointment.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteAppointment.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%s, role=%s", id, viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, deleteAppointment.ErrNotEditable):
			h.logger.Warn("DELETE /appointments/{id} - Not editable: appointment_id=%s", id)
			handlers.RespondConflict(w, msgNotEditable)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%s", id)
	handlers.RespondNoContent(w)
}
