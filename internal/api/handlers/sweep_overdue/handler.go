package sweep_overdue

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	sweepOverdue "github.com/m04kA/SMC-SalonScheduler/internal/usecase/sweep_overdue"
)

const (
	msgMissingSession = "пользователь не авторизован"
	msgForbidden      = "запуск доступен только администратору"
)

type Handler struct {
	useCase SweepOverdueUseCase
	logger  Logger
}

func NewHandler(useCase SweepOverdueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.useCase.Execute(r.Context(), viewer)
	if err != nil {
		switch {
		case errors.Is(err, sweepOverdue.ErrAccessDenied):
			h.logger.Warn("POST /appointments/sweep - Access denied: role=%s", viewer.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /appointments/sweep - Sweep failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/sweep - Sweep finished: transitioned=%d, failed=%d",
		result.Transitioned, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}
