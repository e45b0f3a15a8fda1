package get_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	getReport "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_report"
)

const (
	msgMissingSession = "пользователь не авторизован"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden      = "отчеты недоступны для этой роли"
	msgInvalidInput   = "некорректные параметры отчета"
)

type Handler struct {
	useCase GetReportUseCase
	logger  Logger
}

func NewHandler(useCase GetReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports
// Query params: date (YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /reports - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getReport.Request{Viewer: viewer, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getReport.ErrAccessDenied):
			h.logger.Warn("GET /reports - Access denied: role=%s", viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getReport.ErrInvalidInput):
			h.logger.Warn("GET /reports - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /reports - Failed to build report: role=%s, error=%v", viewer.Role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports - Report built successfully: scope=%s, completed=%d",
		result.Scope, result.Report.CompletedCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
