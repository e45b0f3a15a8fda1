package submit_schedule_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// ScheduleRequestRepository интерфейс репозитория заявок на выходной
type ScheduleRequestRepository interface {
	Create(ctx context.Context, req *domain.ScheduleRequest) (*domain.ScheduleRequest, error)
	GetByFilter(ctx context.Context, filter domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error)
}

// Notifier уведомление администраторов о новой заявке
type Notifier interface {
	ScheduleRequestSubmitted(ctx context.Context, r *domain.ScheduleRequest)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
