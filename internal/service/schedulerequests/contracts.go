package schedulerequests

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// RequestRepository интерфейс репозитория заявок на выходной
type RequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleRequest, error)
	GetByFilter(ctx context.Context, filter domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error)
	SaveDecision(ctx context.Context, req *domain.ScheduleRequest) (*domain.ScheduleRequest, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.Staff, error)
}

// Notifier уведомление мастера о решении
type Notifier interface {
	ScheduleRequestDecided(ctx context.Context, r *domain.ScheduleRequest)
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
