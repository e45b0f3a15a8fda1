package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/notifier"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	List(ctx context.Context) ([]*domain.Staff, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// PreferencesProvider личные настройки пользователя с учетом значений по умолчанию
type PreferencesProvider interface {
	Preferences(ctx context.Context, userID uuid.UUID) (domain.Preferences, error)
}

// Sender канал доставки
type Sender interface {
	Send(ctx context.Context, msg notifier.Message) error
}

// Metrics счетчики отправленных уведомлений
type Metrics interface {
	IncNotification(event string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
