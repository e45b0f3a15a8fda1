package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/client"
	staffRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

type fakeAppointmentRepo struct {
	records   map[uuid.UUID]*domain.Appointment
	updates   int
	updateErr error
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := f.records[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.records {
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		if filter.StartDate != nil && !domain.IsSameDay(a.Date, *filter.StartDate) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if _, ok := f.records[a.ID]; !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates++
	cp := *a
	f.records[a.ID] = &cp
	return &cp, nil
}

type fakeClientRepo struct{ known map[uuid.UUID]bool }

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	if f.known[id] {
		return &domain.Client{ID: id}, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

type fakeServiceRepo struct{ known map[uuid.UUID]bool }

func (f *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if f.known[id] {
		return &domain.Service{ID: id}, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeStaffRepo struct{ known map[uuid.UUID]bool }

func (f *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Staff, error) {
	if f.known[id] {
		return &domain.Staff{ID: id}, nil
	}
	return nil, staffRepo.ErrStaffNotFound
}

type fakeRequestRepo struct{ records []*domain.ScheduleRequest }

func (f *fakeRequestRepo) GetByFilter(_ context.Context, _ domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error) {
	return f.records, nil
}

type fakeSettings struct{}

func (fakeSettings) Business(context.Context) (domain.Settings, error) {
	return domain.DefaultSettings(), nil
}

type fakeNotifier struct {
	changed   int
	cancelled int
}

func (f *fakeNotifier) AppointmentChanged(context.Context, *domain.Viewer, *domain.Appointment) {
	f.changed++
}

func (f *fakeNotifier) AppointmentCancelled(context.Context, *domain.Viewer, *domain.Appointment) {
	f.cancelled++
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointmentRepo
	requests     *fakeRequestRepo
	notifier     *fakeNotifier
	admin        *domain.Viewer
	bia          *domain.Viewer
	ana          *domain.Viewer
	tomorrow     *domain.Appointment
	yesterday    *domain.Appointment
	today        time.Time
}

func newFixture() *fixture {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	viewer := func(role domain.Role) *domain.Viewer {
		s := &domain.Staff{ID: uuid.New(), Role: role}
		return &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Staff: s, Role: role}
	}
	admin, bia, ana := viewer(domain.RoleAdmin), viewer(domain.RoleManicurist), viewer(domain.RoleManicurist)
	clientID, serviceID := uuid.New(), uuid.New()

	tomorrow := &domain.Appointment{
		ID: uuid.New(), ClientID: clientID, ServiceID: serviceID, StaffID: bia.Staff.ID,
		Date: today.AddDate(0, 0, 1), Time: "09:20", Status: domain.StatusScheduled,
	}
	yesterday := &domain.Appointment{
		ID: uuid.New(), ClientID: clientID, ServiceID: serviceID, StaffID: bia.Staff.ID,
		Date: today.AddDate(0, 0, -1), Time: "09:20", Status: domain.StatusCompleted,
	}

	f := &fixture{
		appointments: &fakeAppointmentRepo{records: map[uuid.UUID]*domain.Appointment{
			tomorrow.ID: tomorrow, yesterday.ID: yesterday,
		}},
		requests:  &fakeRequestRepo{},
		notifier:  &fakeNotifier{},
		admin:     admin,
		bia:       bia,
		ana:       ana,
		tomorrow:  tomorrow,
		yesterday: yesterday,
		today:     today,
	}

	staff := map[uuid.UUID]bool{bia.Staff.ID: true, ana.Staff.ID: true}
	f.uc = NewUseCase(
		f.appointments,
		&fakeClientRepo{known: map[uuid.UUID]bool{clientID: true}},
		&fakeServiceRepo{known: map[uuid.UUID]bool{serviceID: true}},
		&fakeStaffRepo{known: staff},
		f.requests,
		fakeSettings{},
		f.notifier,
		fakeTxManager{},
		nopLogger{},
	).WithTimeProvider(fixedTime{now: today.Add(10 * time.Hour)})

	return f
}

func TestUpdateAppointment_Complete(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Viewer: f.bia, ID: f.tomorrow.ID, Status: ptr.Ptr("completed"), Notes: ptr.Ptr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Nil(t, resp.Notes)
	assert.Equal(t, 1, f.notifier.changed)
}

func TestUpdateAppointment_CancelNotifiesCancellation(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.cancelled)
	assert.Zero(t, f.notifier.changed)
}

func TestUpdateAppointment_PastIsNotEditable(t *testing.T) {
	f := newFixture()

	for _, status := range []string{"scheduled", "cancelled", "no-show"} {
		_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.yesterday.ID, Status: ptr.Ptr(status)})
		assert.ErrorIs(t, err, ErrNotEditable)
	}
	assert.Zero(t, f.appointments.updates)
}

func TestUpdateAppointment_OtherManicuristDenied(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.ana, ID: f.tomorrow.ID, Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.bia, ID: f.tomorrow.ID, StaffID: ptr.Ptr(f.ana.Staff.ID)})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateAppointment_Reschedule(t *testing.T) {
	f := newFixture()
	dayAfter := f.today.AddDate(0, 0, 2)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Viewer: f.admin, ID: f.tomorrow.ID, Date: &dayAfter, Time: ptr.Ptr(types.TimeString("10:00")),
	})
	require.NoError(t, err)
	assert.True(t, resp.Date.Equal(dayAfter))
	assert.Equal(t, types.TimeString("10:00"), resp.Time)
}

func TestUpdateAppointment_RescheduleChecks(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)
	yesterday := f.today.AddDate(0, 0, -1)

	other := &domain.Appointment{
		ID: uuid.New(), StaffID: f.bia.Staff.ID, Date: tomorrow, Time: "10:00", Status: domain.StatusScheduled,
	}
	f.appointments.records[other.ID] = other

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Time: ptr.Ptr(types.TimeString("10:00"))})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Time: ptr.Ptr(types.TimeString("12:40"))})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Date: &yesterday})
	assert.ErrorIs(t, err, ErrPastDate)

	f.requests.records = []*domain.ScheduleRequest{{StaffID: f.ana.Staff.ID, Date: tomorrow, Status: domain.RequestApproved}}
	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, StaffID: ptr.Ptr(f.ana.Staff.ID)})
	assert.ErrorIs(t, err, ErrStaffUnavailable)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, StaffID: ptr.Ptr(uuid.New())})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, ClientID: ptr.Ptr(uuid.New())})
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.Zero(t, f.appointments.updates)
}

func TestUpdateAppointment_KeepingOwnSlotIsNotAConflict(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Time: ptr.Ptr(types.TimeString("09:20"))})
	assert.NoError(t, err)
}

func TestUpdateAppointment_ReactivationChecksSlot(t *testing.T) {
	f := newFixture()
	f.tomorrow.Status = domain.StatusCancelled

	other := &domain.Appointment{
		ID: uuid.New(), StaffID: f.bia.Staff.ID, Date: f.tomorrow.Date, Time: "09:20", Status: domain.StatusScheduled,
	}
	f.appointments.records[other.ID] = other

	for _, status := range []string{"scheduled", "completed"} {
		_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Status: ptr.Ptr(status)})
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	}
	assert.Zero(t, f.appointments.updates)

	// освобождаем слот: возврат в расписание проходит
	other.Status = domain.StatusCancelled
	resp, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Status: ptr.Ptr("scheduled")})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestUpdateAppointment_ReactivationChecksScheduleBlock(t *testing.T) {
	f := newFixture()
	f.tomorrow.Status = domain.StatusNoShow
	f.requests.records = []*domain.ScheduleRequest{{StaffID: f.bia.Staff.ID, Date: f.tomorrow.Date, Status: domain.RequestApproved}}

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Status: ptr.Ptr("scheduled")})
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestUpdateAppointment_StorageSlotConflictMapsToSlotNotAvailable(t *testing.T) {
	f := newFixture()
	f.appointments.updateErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Time: ptr.Ptr(types.TimeString("10:00"))})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestUpdateAppointment_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: uuid.New()})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{Viewer: f.admin, ID: f.tomorrow.ID, Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
