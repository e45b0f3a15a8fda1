package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/staff"
)

// UseCase use case для получения свободных слотов мастера на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	requestRepo     ScheduleRequestRepository
	settings        SettingsProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	requestRepo ScheduleRequestRepository,
	settings SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		requestRepo:     requestRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: user=%s, staff=%s, date=%s", req.Viewer.Identity.UserID, req.StaffID, date.Format(domain.DateFormat))

	// 2. Мастер видит только свое расписание
	if !req.Viewer.CanBookFor(req.StaffID) {
		uc.logger.Warn("GetAvailableSlots: user=%s cannot view slots of staff=%s", req.Viewer.Identity.UserID, req.StaffID)
		return nil, ErrAccessDenied
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Проверяем существование мастера
	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 5. Получаем настройки салона
	settings, err := uc.settings.Business(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:      date,
		StaffID:   req.StaffID,
		IsWorkDay: settings.IsWorkDay(date),
		Slots:     []Slot{},
	}

	// 6. На прошедшие даты слотов нет
	if domain.IsDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return resp, nil
	}

	// 7. Генерируем сетку дня
	grid, err := settings.DaySlots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 8. Получаем активные записи мастера на эту дату
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{
		StartDate: &date,
		EndDate:   &date,
		StaffID:   &req.StaffID,
		Statuses:  domain.ActiveStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	resp.Slots = buildSlots(grid, appointments, date, now, settings.LateToleranceMinutes)

	// 9. Одобренный выходной закрывает все слоты
	approved := domain.RequestApproved
	requests, err := uc.requestRepo.GetByFilter(ctx, domain.ScheduleRequestFilter{
		StaffID: &req.StaffID,
		Status:  &approved,
		Date:    &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule requests: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule requests: %v", ErrInternal, err)
	}
	if domain.HasApprovedBlock(requests, req.StaffID, date) {
		resp.StaffUnavailable = true
		resp.Slots = markUnavailable(resp.Slots)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for staff=%s, date=%s",
		len(resp.Slots), req.StaffID, date.Format(domain.DateFormat))

	return resp, nil
}
