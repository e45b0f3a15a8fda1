package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, viewer *domain.Viewer, search string) (*models.ClientListResponse, error)
	GetByID(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) (*models.ClientResponse, error)
	Create(ctx context.Context, viewer *domain.Viewer, req *models.ClientRequest) (*models.ClientResponse, error)
	Update(ctx context.Context, viewer *domain.Viewer, id uuid.UUID, req *models.ClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, viewer *domain.Viewer, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
