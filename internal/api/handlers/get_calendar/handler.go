package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_calendar"
)

const (
	msgMissingSession = "пользователь не авторизован"
	msgInvalidView    = "некорректный вид календаря, ожидается day, week или month"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidInput   = "некорректные параметры календаря"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: view (day|week|month, по умолчанию week), date (YYYY-MM-DD, по умолчанию сегодня), staffId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	query := r.URL.Query()

	view := domain.CalendarView(query.Get("view"))
	if view == "" {
		view = domain.ViewWeek
	}
	if !view.IsValid() {
		h.logger.Warn("GET /calendar - Invalid view: %q", view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	staffID, err := handlers.QueryUUID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	req := &getCalendar.Request{
		Viewer:  viewer,
		View:    view,
		StaffID: staffID,
	}
	if date != nil {
		req.Date = *date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: view=%s, error=%v", view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built successfully: view=%s, from=%s, to=%s, role=%s",
		view, handlers.FormatDate(result.From), handlers.FormatDate(result.To), viewer.Role)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
