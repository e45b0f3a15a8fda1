package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/settings/models"
)

type SettingsService interface {
	GetBusiness(ctx context.Context, viewer *domain.Viewer) (*models.BusinessSettings, error)
	UpdateBusiness(ctx context.Context, viewer *domain.Viewer, req *models.BusinessSettings) (*models.BusinessSettings, error)
	GetPreferences(ctx context.Context, viewer *domain.Viewer) (*models.Preferences, error)
	UpdatePreferences(ctx context.Context, viewer *domain.Viewer, req *models.Preferences) (*models.Preferences, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
