package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, viewer *domain.Viewer) (*models.ServiceListResponse, error)
	GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ServiceResponse, error)
	Create(ctx context.Context, viewer *domain.Viewer, req *models.ServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error)
	Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
