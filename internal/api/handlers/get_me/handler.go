package get_me

import (
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
)

const msgMissingSession = "пользователь не авторизован"

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

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	h.logger.Info("GET /me - Viewer resolved: user_id=%s, role=%s", viewer.Identity.UserID, viewer.Role)
	handlers.RespondJSON(w, http.StatusOK, h.service.Me(viewer))
}
