package update_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	updateAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidAppointment = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса: ожидаются UUID, дата YYYY-MM-DD и время HH:MM"
	msgNotFound           = "запись не найдена"
	msgForbidden          = "доступ запрещен"
	msgNotEditable        = "запись больше нельзя изменить"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgPastDate           = "нельзя перенести запись на прошедшую дату"
	msgInvalidTimeSlot    = "время не совпадает со слотом расписания"
	msgStaffUnavailable   = "у мастера выходной в этот день"
	msgSlotNotAvailable   = "выбранный слот уже занят"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	id, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointment)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(viewer, id)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: appointment_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%s, role=%s", id, viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PATCH /appointments/{id} - Not editable: appointment_id=%s", id)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, updateAppointment.ErrPastDate):
			h.logger.Warn("PATCH /appointments/{id} - Past date: appointment_id=%s", id)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, updateAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /appointments/{id} - Invalid time slot: appointment_id=%s", id)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, updateAppointment.ErrStaffUnavailable):
			h.logger.Warn("PATCH /appointments/{id} - Staff unavailable: appointment_id=%s", id)
			handlers.RespondConflict(w, msgStaffUnavailable)

		case errors.Is(err, updateAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id} - Slot not available: appointment_id=%s", id)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%s, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
