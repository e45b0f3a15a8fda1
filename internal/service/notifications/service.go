package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/notifier"
)

// Service уведомления сотрудников о записях и заявках.
// Отправка идёт в фоне и не задерживает ответ на запрос.
// Ошибки доставки только логируются и никогда не прерывают исходную операцию.
type Service struct {
	wg sync.WaitGroup


	staffRepo   StaffRepository
	clientRepo  ClientRepository
	serviceRepo ServiceRepository
	preferences PreferencesProvider
	sender      Sender
	metrics     Metrics
	timeout     time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	staffRepo StaffRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	preferences PreferencesProvider,
	sender Sender,
	metrics Metrics,
	timeout time.Duration,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:   staffRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		preferences: preferences,
		sender:      sender,
		metrics:     metrics,
		timeout:     timeout,
		logger:      logger,
	}
}

// AppointmentCreated сообщает мастеру о новой записи
func (s *Service) AppointmentCreated(ctx context.Context, actor *domain.Viewer, a *domain.Appointment) {
	s.dispatch(ctx, func(ctx context.Context) { s.notifyAppointment(ctx, EventAppointmentCreated, actor, a) })
}

// AppointmentChanged сообщает мастеру об изменении записи
func (s *Service) AppointmentChanged(ctx context.Context, actor *domain.Viewer, a *domain.Appointment) {
	s.dispatch(ctx, func(ctx context.Context) { s.notifyAppointment(ctx, EventAppointmentChanged, actor, a) })
}

// AppointmentCancelled сообщает мастеру об отмене записи
func (s *Service) AppointmentCancelled(ctx context.Context, actor *domain.Viewer, a *domain.Appointment) {
	s.dispatch(ctx, func(ctx context.Context) { s.notifyAppointment(ctx, EventAppointmentCancelled, actor, a) })
}

// ScheduleRequestSubmitted сообщает администраторам о новой заявке
func (s *Service) ScheduleRequestSubmitted(ctx context.Context, r *domain.ScheduleRequest) {
	s.dispatch(ctx, func(ctx context.Context) { s.notifyRequestSubmitted(ctx, r) })
}

// ScheduleRequestDecided сообщает мастеру о решении по заявке
func (s *Service) ScheduleRequestDecided(ctx context.Context, r *domain.ScheduleRequest) {
	s.dispatch(ctx, func(ctx context.Context) { s.notifyRequestDecided(ctx, r) })
}

// Wait дожидается завершения уже запущенных отправок
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) notifyRequestSubmitted(ctx context.Context, r *domain.ScheduleRequest) {
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Warn("ScheduleRequestSubmitted: failed to list staff: %v", err)
		return
	}

	staffName := "Profissional"
	if requester := domain.FindStaffByID(roster, r.StaffID); requester != nil {
		staffName = requester.Name
	}

	for _, admin := range domain.StaffWithRole(roster, domain.RoleAdmin) {
		s.deliver(ctx, EventRequestSubmitted, admin, "Nova solicitação de folga", requestSubmittedBody(staffName, r))
	}
}

func (s *Service) notifyRequestDecided(ctx context.Context, r *domain.ScheduleRequest) {
	requester, err := s.staffRepo.GetByID(ctx, r.StaffID)
	if err != nil {
		s.logger.Warn("ScheduleRequestDecided: failed to get staff id=%s: %v", r.StaffID, err)
		return
	}

	s.deliver(ctx, EventRequestDecided, requester, requestDecidedTitle(r), requestDecidedBody(r))
}

func (s *Service) notifyAppointment(ctx context.Context, event Event, actor *domain.Viewer, a *domain.Appointment) {
	// Сам себе мастер уведомление не отправляет
	if actor != nil && actor.IsOwnStaff(a.StaffID) {
		return
	}

	recipient, err := s.staffRepo.GetByID(ctx, a.StaffID)
	if err != nil {
		s.logger.Warn("%s: failed to get staff id=%s: %v", event, a.StaffID, err)
		return
	}

	// Имена клиента и услуги не обязательны для уведомления
	var clientName, serviceName string
	if c, err := s.clientRepo.GetByID(ctx, a.ClientID); err == nil {
		clientName = c.Name
	}
	if svc, err := s.serviceRepo.GetByID(ctx, a.ServiceID); err == nil {
		serviceName = svc.Name
	}

	s.deliver(ctx, event, recipient, appointmentTitle(event), appointmentBody(clientName, serviceName, a))
}

func (s *Service) deliver(ctx context.Context, event Event, recipient *domain.Staff, title, body string) {
	if recipient.UserID == nil {
		s.logger.Info("%s: staff id=%s has no account, skipping", event, recipient.ID)
		return
	}

	prefs, err := s.preferences.Preferences(ctx, *recipient.UserID)
	if err != nil {
		s.logger.Warn("%s: failed to read preferences of staff id=%s: %v", event, recipient.ID, err)
		return
	}
	if prefs.Notifications != domain.NotificationsGranted {
		return
	}

	msg := notifier.Message{
		Recipient: notifier.Recipient{Name: recipient.Name},
		Title:     title,
		Body:      body,
	}
	if recipient.Email != nil {
		msg.Recipient.Email = *recipient.Email
	}
	if recipient.Phone != nil {
		msg.Recipient.Phone = *recipient.Phone
	}

	err = s.sender.Send(ctx, msg)
	s.metrics.IncNotification(string(event), err)
	if err != nil {
		s.logger.Warn("%s: failed to notify staff id=%s: %v", event, recipient.ID, err)
		return
	}

	s.logger.Info("%s: notified staff id=%s", event, recipient.ID)
}

// dispatch запускает отправку в отдельной горутине с собственным таймаутом
func (s *Service) dispatch(ctx context.Context, send func(ctx context.Context)) {
	ctx, cancel := s.detach(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		send(ctx)
	}()
}

// detach отвязывает отправку от отмены запроса, ограничивая ее таймаутом
func (s *Service) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(context.WithoutCancel(ctx))
	}
	return context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
}
