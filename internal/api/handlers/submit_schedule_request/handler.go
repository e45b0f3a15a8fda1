package submit_schedule_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	submitRequest "github.com/m04kA/SMC-SalonScheduler/internal/usecase/submit_schedule_request"
)

const (
	msgMissingSession     = "пользователь не авторизован"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "заявки на выходной подают только мастера"
	msgDateTooEarly       = "выходной можно запросить начиная с завтрашнего дня"
	msgAlreadyRequested   = "заявка на сегодня уже подана"
	msgInvalidInput       = "укажите причину заявки (не длиннее 500 символов)"
)

type Handler struct {
	useCase SubmitScheduleRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitScheduleRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := handlers.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /schedule-requests - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitRequest.Request{
		Viewer: viewer,
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrAccessDenied):
			h.logger.Warn("POST /schedule-requests - Access denied: role=%s", viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitRequest.ErrDateTooEarly):
			h.logger.Warn("POST /schedule-requests - Date too early: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooEarly)

		case errors.Is(err, submitRequest.ErrAlreadyRequested):
			h.logger.Warn("POST /schedule-requests - Already requested today: user_id=%s", viewer.Identity.UserID)
			handlers.RespondConflict(w, msgAlreadyRequested)

		case errors.Is(err, submitRequest.ErrInvalidInput):
			h.logger.Warn("POST /schedule-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedule-requests - Failed to submit request: user_id=%s, error=%v",
				viewer.Identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule-requests - Request submitted successfully: request_id=%s, staff_id=%s, date=%s",
		result.ID, result.StaffID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
