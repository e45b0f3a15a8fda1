package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.Staff, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, search string) ([]*domain.Client, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// ScheduleRequestRepository интерфейс репозитория заявок на выходной
type ScheduleRequestRepository interface {
	GetByFilter(ctx context.Context, filter domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error)
}

// SettingsProvider настройки салона
type SettingsProvider interface {
	Business(ctx context.Context) (domain.Settings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
