package get_report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// UseCase use case построения отчета по выручке
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	settings        SettingsProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	settings SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
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

// Execute строит отчет: администратор видит весь салон, мастер только свои записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Viewer == nil {
		return nil, fmt.Errorf("%w: viewer is required", ErrInvalidInput)
	}

	uc.logger.Info("GetReport: user=%s role=%s", req.Viewer.Identity.UserID, req.Viewer.Role)

	// 1. Проверяем права доступа
	if !req.Viewer.CanViewReports() {
		uc.logger.Warn("GetReport: access denied for user=%s role=%s", req.Viewer.Identity.UserID, req.Viewer.Role)
		return nil, ErrAccessDenied
	}

	asOf := uc.timeProvider.Now()
	if req.Date != nil {
		asOf = *req.Date
	}

	// 2. Определяем область отчета
	filter := domain.AppointmentFilter{Statuses: []domain.AppointmentStatus{domain.StatusCompleted}}
	scope := ScopeSalon
	if !req.Viewer.IsAdmin() {
		own := req.Viewer.Staff.ID
		filter.StaffID = &own
		scope = ScopeOwn
	}

	// 3. Загружаем данные
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetReport: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetReport: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	roster := []*domain.Staff{req.Viewer.Staff}
	if scope == ScopeSalon {
		if roster, err = uc.staffRepo.List(ctx); err != nil {
			uc.logger.Error("GetReport: failed to list staff: %v", err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
	}

	settings, err := uc.settings.Business(ctx)
	if err != nil {
		uc.logger.Error("GetReport: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Агрегируем
	report := domain.Aggregate(appointments, services, roster, decimal.NewFromFloat(settings.CommissionRate), asOf)

	uc.logger.Info("GetReport: scope=%s completed=%d total=%s", scope, report.CompletedCount, report.TotalRevenue.StringFixed(2))

	return &Response{Scope: scope, Report: report}, nil
}
