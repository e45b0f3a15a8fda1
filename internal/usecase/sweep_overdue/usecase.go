package sweep_overdue

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// UseCase переводит запланированные записи прошедших дней в no-show
type UseCase struct {
	appointmentRepo AppointmentRepository
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute ручной запуск администратором
func (uc *UseCase) Execute(ctx context.Context, viewer *domain.Viewer) (*Result, error) {
	if viewer == nil || !viewer.IsAdmin() {
		uc.logger.Warn("SweepOverdue: manual run denied")
		return nil, ErrAccessDenied
	}
	return uc.Tick(ctx, uc.timeProvider.Now())
}

// Run проход от текущего времени (cron, CLI)
func (uc *UseCase) Run(ctx context.Context) (*Result, error) {
	return uc.Tick(ctx, uc.timeProvider.Now())
}

// Tick один проход относительно now. Повторный вызов с тем же now ничего не меняет.
// Каждая запись обновляется условно (только из scheduled), поэтому параллельные правки не теряются.
func (uc *UseCase) Tick(ctx context.Context, now time.Time) (*Result, error) {
	result := &Result{AsOf: domain.DateOnly(now)}

	// 1. Получаем запланированные записи до вчерашнего дня включительно
	yesterday := domain.AddDays(now, -1)
	candidates, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{
		EndDate:  &yesterday,
		Statuses: []domain.AppointmentStatus{domain.StatusScheduled},
	})
	if err != nil {
		uc.logger.Error("SweepOverdue: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 2. Отбираем просроченные
	overdue := domain.SelectOverdue(candidates, now)
	result.Checked = len(overdue)
	if len(overdue) == 0 {
		return result, nil
	}

	// 3. Переводим каждую в no-show, ошибки по одной записи не прерывают проход
	for _, a := range overdue {
		changed, err := uc.appointmentRepo.TransitionStatus(ctx, a.ID, domain.StatusScheduled, domain.StatusNoShow)
		if err != nil {
			uc.logger.Error("SweepOverdue: failed to mark appointment id=%s as no-show: %v", a.ID, err)
			result.Failed++
			continue
		}
		if !changed {
			result.Skipped++
			continue
		}
		result.Transitioned++
	}

	uc.metrics.AddNoShowTransitions(result.Transitioned, result.Failed)
	uc.logger.Info("SweepOverdue: as of %s checked=%d transitioned=%d skipped=%d failed=%d",
		result.AsOf.Format(domain.DateFormat), result.Checked, result.Transitioned, result.Skipped, result.Failed)

	return result, nil
}
