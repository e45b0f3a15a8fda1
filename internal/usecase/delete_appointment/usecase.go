package delete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
)

// UseCase use case для удаления записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute удаляет запись по тем же правилам, что и изменение
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	// 1. Валидация входных данных
	if req.Viewer == nil || req.ID == uuid.Nil {
		uc.logger.Warn("DeleteAppointment: validation failed: viewer and id are required")
		return fmt.Errorf("%w: viewer and id are required", ErrInvalidInput)
	}

	uc.logger.Info("DeleteAppointment: user=%s, appointment=%s", req.Viewer.Identity.UserID, req.ID)

	// 2. Получаем запись
	current, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("DeleteAppointment: appointment id=%s not found", req.ID)
			return ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to get appointment id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем права
	if !req.Viewer.CanSeeAppointment(current) {
		uc.logger.Warn("DeleteAppointment: user=%s cannot access appointment id=%s", req.Viewer.Identity.UserID, req.ID)
		return ErrAccessDenied
	}

	// 4. Записи на прошедшие даты не удаляются
	if !current.IsEditable(uc.timeProvider.Now()) {
		uc.logger.Warn("DeleteAppointment: appointment id=%s dated %s is not editable",
			req.ID, current.Date.Format(domain.DateFormat))
		return ErrNotEditable
	}

	// 5. Удаляем
	if err := uc.appointmentRepo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		uc.logger.Error("DeleteAppointment: failed to delete appointment id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteAppointment: appointment id=%s deleted", req.ID)

	// 6. Для мастера удаление запланированной записи равносильно отмене
	if current.Status == domain.StatusScheduled {
		uc.notifier.AppointmentCancelled(ctx, req.Viewer, current)
	}

	return nil
}
