package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/notifier"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

var errNotFound = errors.New("not found")

type fakeStaffRepo struct{ records []*domain.Staff }

func (f *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Staff, error) {
	if s := domain.FindStaffByID(f.records, id); s != nil {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeStaffRepo) List(context.Context) ([]*domain.Staff, error) { return f.records, nil }

type fakeClientRepo struct{ client *domain.Client }

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	if f.client == nil || f.client.ID != id {
		return nil, errNotFound
	}
	return f.client, nil
}

type fakeServiceRepo struct{ service *domain.Service }

func (f *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if f.service == nil || f.service.ID != id {
		return nil, errNotFound
	}
	return f.service, nil
}

type fakePreferences struct{ granted map[uuid.UUID]bool }

func (f *fakePreferences) Preferences(_ context.Context, userID uuid.UUID) (domain.Preferences, error) {
	p := domain.DefaultPreferences()
	if f.granted[userID] {
		p.Notifications = domain.NotificationsGranted
	}
	return p, nil
}

type fakeSender struct {
	sent    []notifier.Message
	err     error
	release chan struct{}
}

func (f *fakeSender) Send(ctx context.Context, msg notifier.Message) error {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeMetrics struct {
	ok, failed int
}

func (f *fakeMetrics) IncNotification(_ string, err error) {
	if err != nil {
		f.failed++
		return
	}
	f.ok++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc         *Service
	sender      *fakeSender
	metrics     *fakeMetrics
	prefs       *fakePreferences
	admin       *domain.Staff
	manicurist  *domain.Staff
	appointment *domain.Appointment
}

func newFixture() *fixture {
	admin := &domain.Staff{ID: uuid.New(), UserID: ptr.Ptr(uuid.New()), Name: "Ana", Email: ptr.Ptr("ana@salon.test"), Role: domain.RoleAdmin}
	manicurist := &domain.Staff{ID: uuid.New(), UserID: ptr.Ptr(uuid.New()), Name: "Bia", Email: ptr.Ptr("bia@salon.test"), Phone: ptr.Ptr("+5511999990000"), Role: domain.RoleManicurist}
	client := &domain.Client{ID: uuid.New(), Name: "Maria"}
	service := &domain.Service{ID: uuid.New(), Name: "Manicure"}

	f := &fixture{
		sender:     &fakeSender{},
		metrics:    &fakeMetrics{},
		prefs:      &fakePreferences{granted: map[uuid.UUID]bool{}},
		admin:      admin,
		manicurist: manicurist,
		appointment: &domain.Appointment{
			ID:        uuid.New(),
			ClientID:  client.ID,
			ServiceID: service.ID,
			StaffID:   manicurist.ID,
			Date:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Time:      types.TimeString("09:20"),
			Status:    domain.StatusScheduled,
		},
	}
	f.svc = NewService(
		&fakeStaffRepo{records: []*domain.Staff{admin, manicurist}},
		&fakeClientRepo{client: client},
		&fakeServiceRepo{service: service},
		f.prefs,
		f.sender,
		f.metrics,
		time.Second,
		nopLogger{},
	)
	return f
}

func (f *fixture) viewerOf(s *domain.Staff) *domain.Viewer {
	return &domain.Viewer{Identity: domain.Identity{UserID: *s.UserID}, Staff: s, Role: s.Role}
}

func TestAppointmentCreated_OnlyWhenGranted(t *testing.T) {
	f := newFixture()

	f.svc.AppointmentCreated(context.Background(), f.viewerOf(f.admin), f.appointment)
	f.svc.Wait()
	assert.Empty(t, f.sender.sent)

	f.prefs.granted[*f.manicurist.UserID] = true
	f.svc.AppointmentCreated(context.Background(), f.viewerOf(f.admin), f.appointment)
	f.svc.Wait()

	require.Len(t, f.sender.sent, 1)
	msg := f.sender.sent[0]
	assert.Equal(t, "Novo agendamento", msg.Title)
	assert.Equal(t, "Maria - Manicure em 12/03/2026 às 09:20", msg.Body)
	assert.Equal(t, "bia@salon.test", msg.Recipient.Email)
	assert.Equal(t, "+5511999990000", msg.Recipient.Phone)
	assert.Equal(t, 1, f.metrics.ok)
}

func TestAppointmentChanged_SkipsOwnActions(t *testing.T) {
	f := newFixture()
	f.prefs.granted[*f.manicurist.UserID] = true

	f.svc.AppointmentChanged(context.Background(), f.viewerOf(f.manicurist), f.appointment)
	f.svc.Wait()
	assert.Empty(t, f.sender.sent)

	f.svc.AppointmentCancelled(context.Background(), f.viewerOf(f.admin), f.appointment)
	f.svc.Wait()
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "Agendamento cancelado", f.sender.sent[0].Title)
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.prefs.granted[*f.manicurist.UserID] = true
	f.sender.err = errors.New("provider down")

	assert.NotPanics(t, func() {
		f.svc.AppointmentCreated(context.Background(), nil, f.appointment)
		f.svc.Wait()
	})
	assert.Equal(t, 1, f.metrics.failed)
}

func TestDeliverySurvivesRequestCancellation(t *testing.T) {
	f := newFixture()
	f.prefs.granted[*f.manicurist.UserID] = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.svc.AppointmentCreated(ctx, nil, f.appointment)
	f.svc.Wait()

	assert.Len(t, f.sender.sent, 1)
}

func TestScheduleRequestEvents(t *testing.T) {
	f := newFixture()
	f.prefs.granted[*f.admin.UserID] = true
	f.prefs.granted[*f.manicurist.UserID] = true

	r := &domain.ScheduleRequest{
		ID:      uuid.New(),
		StaffID: f.manicurist.ID,
		Date:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Reason:  "Consulta médica",
		Status:  domain.RequestPending,
	}

	f.svc.ScheduleRequestSubmitted(context.Background(), r)
	f.svc.Wait()
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "Ana", f.sender.sent[0].Recipient.Name)
	assert.Equal(t, "Bia pediu folga em 20/03/2026: Consulta médica", f.sender.sent[0].Body)

	r.Status = domain.RequestApproved
	f.svc.ScheduleRequestDecided(context.Background(), r)
	f.svc.Wait()
	require.Len(t, f.sender.sent, 2)
	assert.Equal(t, "Folga aprovada", f.sender.sent[1].Title)
	assert.Equal(t, "Bia", f.sender.sent[1].Recipient.Name)
}

func TestStaffWithoutAccountIsSkipped(t *testing.T) {
	f := newFixture()
	f.manicurist.UserID = nil

	f.svc.AppointmentCreated(context.Background(), nil, f.appointment)
	f.svc.Wait()
	assert.Empty(t, f.sender.sent)
	assert.Zero(t, f.metrics.ok+f.metrics.failed)
}

func TestScheduleRequestSubmitted_DoesNotBlockCaller(t *testing.T) {
	f := newFixture()
	f.prefs.granted[*f.admin.UserID] = true
	f.sender.release = make(chan struct{})

	r := &domain.ScheduleRequest{
		ID:      uuid.New(),
		StaffID: f.manicurist.ID,
		Date:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Reason:  "Consulta médica",
		Status:  domain.RequestPending,
	}

	returned := make(chan struct{})
	go func() {
		f.svc.ScheduleRequestSubmitted(context.Background(), r)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("ScheduleRequestSubmitted waited for the provider")
	}

	close(f.sender.release)
	f.svc.Wait()
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "Ana", f.sender.sent[0].Recipient.Name)
}
