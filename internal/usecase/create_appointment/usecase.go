package create_appointment

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

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
// Проверка занятости и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: user=%s, staff=%s, client=%s, service=%s, date=%s, time=%s",
		req.Viewer.Identity.UserID, req.StaffID, req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 4. Проверяем права: мастер записывает только к себе
	if !req.Viewer.CanBookFor(req.StaffID) {
		uc.logger.Warn("CreateAppointment: user=%s role=%s cannot book for staff=%s",
			req.Viewer.Identity.UserID, req.Viewer.Role, req.StaffID)
		return nil, ErrAccessDenied
	}

	// 5. Проверяем существование клиента, услуги и мастера
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 6. Время должно быть слотом сетки вне обеда
	settings, err := uc.settings.Business(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if err := validateSlot(settings, req.Time); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Одобренный выходной блокирует запись к мастеру на этот день
		approved := domain.RequestApproved
		requests, err := uc.requestRepo.GetByFilter(txCtx, domain.ScheduleRequestFilter{
			StaffID: &req.StaffID,
			Status:  &approved,
			Date:    &date,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get schedule requests: %v", err)
			return fmt.Errorf("%w: failed to get schedule requests: %v", ErrInternal, err)
		}
		if domain.HasApprovedBlock(requests, req.StaffID, date) {
			uc.logger.Warn("CreateAppointment: staff=%s has an approved day off on %s", req.StaffID, date.Format(domain.DateFormat))
			return ErrStaffUnavailable
		}

		// 7.2. Получаем активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetByFilter(txCtx, domain.AppointmentFilter{
			StartDate: &date,
			EndDate:   &date,
			StaffID:   &req.StaffID,
			Statuses:  domain.ActiveStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.3. Проверяем, что слот свободен
		if isSlotTaken(existing, req.Time) {
			uc.logger.Warn("CreateAppointment: slot %s %s is taken for staff=%s", date.Format(domain.DateFormat), req.Time, req.StaffID)
			return ErrSlotNotAvailable
		}

		// 7.4. Создаем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  req.ClientID,
			ServiceID: req.ServiceID,
			StaffID:   req.StaffID,
			Date:      date,
			Time:      req.Time,
			Status:    domain.StatusScheduled,
			Notes:     normalizeNotes(req.Notes),
		})
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateAppointment: slot %s %s was taken concurrently for staff=%s", date.Format(domain.DateFormat), req.Time, req.StaffID)
			return ErrSlotNotAvailable
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s", result.ID)

	// 8. Уведомляем мастера (ошибки доставки не влияют на результат)
	uc.notifier.AppointmentCreated(ctx, req.Viewer, result)

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		ServiceID:   result.ServiceID,
		StaffID:     result.StaffID,
		Date:        result.Date,
		Time:        result.Time,
		Status:      string(result.Status),
		Notes:       result.Notes,
		ClientName:  client.Name,
		ServiceName: service.Name,
		StaffName:   staff.Name,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
