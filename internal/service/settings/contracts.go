package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetBusiness(ctx context.Context) (*domain.Settings, error)
	SaveBusiness(ctx context.Context, s domain.Settings) error
	GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, p domain.Preferences) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
