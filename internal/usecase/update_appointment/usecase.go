package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/client"
	staffRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/staff"
)

// UseCase use case для изменения записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	requestRepo     ScheduleRequestRepository
	settings        SettingsProvider
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	requestRepo ScheduleRequestRepository,
	settings SettingsProvider,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		requestRepo:     requestRepo,
		settings:        settings,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case изменения записи
// Записи на прошедшие даты не редактируются независимо от статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: user=%s, appointment=%s", req.Viewer.Identity.UserID, req.ID)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем запись
	current, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Проверяем права: мастер меняет только свои записи
	if !req.Viewer.CanSeeAppointment(current) {
		uc.logger.Warn("UpdateAppointment: user=%s cannot access appointment id=%s", req.Viewer.Identity.UserID, req.ID)
		return nil, ErrAccessDenied
	}

	// 5. Проверяем, что запись еще редактируема
	if !current.IsEditable(now) {
		uc.logger.Warn("UpdateAppointment: appointment id=%s dated %s is not editable",
			req.ID, current.Date.Format(domain.DateFormat))
		return nil, ErrNotEditable
	}

	next := applyChanges(current, req)

	// 6. Проверяем статус и смену мастера
	if next.Status != current.Status && !current.CanTransitionTo(next.Status) {
		uc.logger.Warn("UpdateAppointment: transition %s -> %s is not allowed", current.Status, next.Status)
		return nil, fmt.Errorf("%w: transition %s -> %s is not allowed", ErrInvalidInput, current.Status, next.Status)
	}
	if next.StaffID != current.StaffID && !req.Viewer.CanBookFor(next.StaffID) {
		uc.logger.Warn("UpdateAppointment: user=%s cannot reassign appointment to staff=%s", req.Viewer.Identity.UserID, next.StaffID)
		return nil, ErrAccessDenied
	}

	// 7. Проверяем существование новых клиента, услуги и мастера
	if err := uc.checkReferences(ctx, current, next); err != nil {
		return nil, err
	}

	moved := isMoved(current, next)

	// 8. Перенос: новая дата не в прошлом и время попадает в сетку
	if moved {
		if domain.IsDateInPast(next.Date, now) {
			uc.logger.Warn("UpdateAppointment: cannot move appointment id=%s to %s", req.ID, next.Date.Format(domain.DateFormat))
			return nil, ErrPastDate
		}

		settings, err := uc.settings.Business(ctx)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		if err := validateSlot(settings, next.Time); err != nil {
			uc.logger.Warn("UpdateAppointment: %v", err)
			return nil, err
		}
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 9. Проверка занятости и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// перенос или возврат отменённой записи в активный статус занимает слот заново
		if next.IsActive() && (moved || !current.IsActive()) {
			if err := uc.checkAvailability(txCtx, next); err != nil {
				return err
			}
		}

		updated, err := uc.appointmentRepo.Update(txCtx, next)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: slot %s %s was taken concurrently for staff=%s",
					next.Date.Format(domain.DateFormat), next.Time, next.StaffID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: appointment id=%s updated, status=%s", result.ID, result.Status)

	// 10. Уведомляем мастера
	if result.Status == domain.StatusCancelled && current.Status != domain.StatusCancelled {
		uc.notifier.AppointmentCancelled(ctx, req.Viewer, result)
	} else {
		uc.notifier.AppointmentChanged(ctx, req.Viewer, result)
	}

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		ServiceID: result.ServiceID,
		StaffID:   result.StaffID,
		Date:      result.Date,
		Time:      result.Time,
		Status:    string(result.Status),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// checkReferences проверяет только изменившиеся ссылки
func (uc *UseCase) checkReferences(ctx context.Context, current, next *domain.Appointment) error {
	if next.ClientID != current.ClientID {
		if _, err := uc.clientRepo.GetByID(ctx, next.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%s: %v", next.ClientID, err)
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
	}

	if next.ServiceID != current.ServiceID {
		if _, err := uc.serviceRepo.GetByID(ctx, next.ServiceID); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%s: %v", next.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	if next.StaffID != current.StaffID {
		if _, err := uc.staffRepo.GetByID(ctx, next.StaffID); err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get staff id=%s: %v", next.StaffID, err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
	}

	return nil
}

// checkAvailability выходной мастера и занятость слота на новую дату
func (uc *UseCase) checkAvailability(txCtx context.Context, next *domain.Appointment) error {
	date := domain.DateOnly(next.Date)

	approved := domain.RequestApproved
	requests, err := uc.requestRepo.GetByFilter(txCtx, domain.ScheduleRequestFilter{
		StaffID: &next.StaffID,
		Status:  &approved,
		Date:    &date,
	})
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get schedule requests: %v", err)
		return fmt.Errorf("%w: failed to get schedule requests: %v", ErrInternal, err)
	}
	if domain.HasApprovedBlock(requests, next.StaffID, date) {
		uc.logger.Warn("UpdateAppointment: staff=%s has an approved day off on %s", next.StaffID, date.Format(domain.DateFormat))
		return ErrStaffUnavailable
	}

	existing, err := uc.appointmentRepo.GetByFilter(txCtx, domain.AppointmentFilter{
		StartDate: &date,
		EndDate:   &date,
		StaffID:   &next.StaffID,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	if isSlotTaken(existing, next.ID, next.Time) {
		uc.logger.Warn("UpdateAppointment: slot %s %s is taken for staff=%s", date.Format(domain.DateFormat), next.Time, next.StaffID)
		return ErrSlotNotAvailable
	}

	return nil
}
