package get_calendar

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// UseCase use case построения календаря на день, неделю или месяц
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	clientRepo      ClientRepository
	serviceRepo     ServiceRepository
	requestRepo     ScheduleRequestRepository
	settings        SettingsProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	requestRepo ScheduleRequestRepository,
	settings SettingsProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		clientRepo:      clientRepo,
		serviceRepo:     serviceRepo,
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

// Execute собирает календарь. Видимость записей одинакова для всех видов.
// Имена клиентов, услуг и мастеров подставляются, если справочники доступны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Viewer == nil {
		return nil, fmt.Errorf("%w: viewer is required", ErrInvalidInput)
	}
	if !req.View.IsValid() {
		uc.logger.Warn("GetCalendar: unknown view %q", req.View)
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}

	now := uc.timeProvider.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	// 2. Границы периода
	from, to, err := domain.CalendarRange(req.View, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetCalendar: user=%s role=%s view=%s from=%s to=%s",
		req.Viewer.Identity.UserID, req.Viewer.Role, req.View, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 3. Настройки салона
	settings, err := uc.settings.Business(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Записи за период: при ошибке чтения календарь показывается пустым
	all, err := uc.appointmentRepo.GetByFilter(ctx, domain.AppointmentFilter{StartDate: &from, EndDate: &to})
	if err != nil {
		uc.logger.Warn("GetCalendar: failed to get appointments, showing empty calendar: %v", err)
		all = nil
	}
	visible := domain.VisibleAppointments(all, req.Viewer, req.StaffID)

	// 5. Справочники: ошибки не фатальны, имена останутся пустыми
	l := uc.loadLookups(ctx)
	visibleStaff := domain.VisibleStaff(l.staff, req.Viewer)

	approved := domain.RequestApproved
	requests, err := uc.requestRepo.GetByFilter(ctx, domain.ScheduleRequestFilter{Status: &approved})
	if err != nil {
		uc.logger.Warn("GetCalendar: failed to get schedule requests, blocks omitted: %v", err)
		requests = nil
	}
	requests = visibleRequests(requests, req.Viewer, visibleStaff)

	// 6. Сетка дня
	grid, err := settings.DaySlots()
	if err != nil {
		uc.logger.Error("GetCalendar: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Собираем дни
	resp := &Response{
		View:              req.View,
		From:              from,
		To:                to,
		Today:             domain.DateOnly(now),
		NoHoursConfigured: settings.WorkingHours.Start.Equal(settings.WorkingHours.End),
		Staff:             staffOptions(visibleStaff),
		Days:              make([]Day, 0),
	}

	for _, day := range domain.DaysInRange(from, to) {
		isPast := domain.IsDateInPast(day, now)
		d := Day{
			Date:            day,
			IsToday:         domain.IsSameDay(day, now),
			IsPast:          isPast,
			IsWorkDay:       settings.IsWorkDay(day),
			BlockedStaffIDs: blockedStaff(requests, day),
			Appointments:    l.appointmentViews(domain.AppointmentsOn(visible, day), now),
		}
		if req.View == domain.ViewDay {
			d.Slots = buildSlots(grid, d.Appointments, isPast)
		}
		resp.Days = append(resp.Days, d)
	}

	uc.logger.Info("GetCalendar: %d days, %d visible appointments of %d", len(resp.Days), len(visible), len(all))

	return resp, nil
}

func (uc *UseCase) loadLookups(ctx context.Context) lookups {
	l := lookups{
		clients:  map[uuid.UUID]*domain.Client{},
		services: domain.ServiceIndex{},
		staff:    []*domain.Staff{},
	}

	if clients, err := uc.clientRepo.List(ctx, ""); err != nil {
		uc.logger.Warn("GetCalendar: failed to list clients, names omitted: %v", err)
	} else {
		for _, c := range clients {
			l.clients[c.ID] = c
		}
	}

	if services, err := uc.serviceRepo.List(ctx); err != nil {
		uc.logger.Warn("GetCalendar: failed to list services, names omitted: %v", err)
	} else {
		l.services = domain.NewServiceIndex(services)
	}

	if staff, err := uc.staffRepo.List(ctx); err != nil {
		uc.logger.Warn("GetCalendar: failed to list staff, names omitted: %v", err)
	} else {
		l.staff = staff
	}

	return l
}

// visibleRequests мастер видит только свои выходные
func visibleRequests(requests []*domain.ScheduleRequest, viewer *domain.Viewer, visibleStaff []*domain.Staff) []*domain.ScheduleRequest {
	if viewer.SeesAllAppointments() {
		return requests
	}
	result := make([]*domain.ScheduleRequest, 0)
	for _, r := range requests {
		if domain.FindStaffByID(visibleStaff, r.StaffID) != nil || viewer.IsOwnStaff(r.StaffID) {
			result = append(result, r)
		}
	}
	return result
}
