package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, viewer *domain.Viewer) (*models.StaffListResponse, error)
	GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.StaffResponse, error)
	Create(ctx context.Context, viewer *domain.Viewer, req *models.CreateStaffRequest) (*models.StaffResponse, error)
	Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
	Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
