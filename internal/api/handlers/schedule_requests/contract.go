package schedule_requests

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/schedulerequests/models"
)

type ScheduleRequestService interface {
	List(ctx context.Context, viewer *domain.Viewer, status *string) (*models.ScheduleRequestListResponse, error)
	Approve(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ScheduleRequestResponse, error)
	Reject(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ScheduleRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
