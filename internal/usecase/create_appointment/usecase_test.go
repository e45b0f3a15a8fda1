package create_appointment

import (
	"context"
	"errors"
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
	records   []*domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *a
	cp.ID = uuid.New()
	f.records = append(f.records, &cp)
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.records {
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		if filter.StartDate != nil && a.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && a.Date.After(*filter.EndDate) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, a.Status) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func containsStatus(list []domain.AppointmentStatus, s domain.AppointmentStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type fakeClientRepo struct{ records map[uuid.UUID]*domain.Client }

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	if c, ok := f.records[id]; ok {
		return c, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

type fakeServiceRepo struct{ records map[uuid.UUID]*domain.Service }

func (f *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	if s, ok := f.records[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeStaffRepo struct{ records map[uuid.UUID]*domain.Staff }

func (f *fakeStaffRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Staff, error) {
	if s, ok := f.records[id]; ok {
		return s, nil
	}
	return nil, staffRepo.ErrStaffNotFound
}

type fakeRequestRepo struct{ records []*domain.ScheduleRequest }

func (f *fakeRequestRepo) GetByFilter(_ context.Context, _ domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error) {
	return f.records, nil
}

type fakeSettings struct{ settings domain.Settings }

func (f fakeSettings) Business(context.Context) (domain.Settings, error) { return f.settings, nil }

type fakeNotifier struct{ created []*domain.Appointment }

func (f *fakeNotifier) AppointmentCreated(_ context.Context, _ *domain.Viewer, a *domain.Appointment) {
	f.created = append(f.created, a)
}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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
	tx           *fakeTxManager
	client       *domain.Client
	service      *domain.Service
	bia          *domain.Staff
	ana          *domain.Staff
	receptionist *domain.Viewer
	biaViewer    *domain.Viewer
	today        time.Time
}

func newFixture() *fixture {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	client := &domain.Client{ID: uuid.New(), Name: "Maria"}
	service := &domain.Service{ID: uuid.New(), Name: "Manicure", DurationMinutes: 30}
	bia := &domain.Staff{ID: uuid.New(), Name: "Bia", Role: domain.RoleManicurist}
	ana := &domain.Staff{ID: uuid.New(), Name: "Ana", Role: domain.RoleManicurist}
	rita := &domain.Staff{ID: uuid.New(), Name: "Rita", Role: domain.RoleReceptionist}

	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		requests:     &fakeRequestRepo{},
		notifier:     &fakeNotifier{},
		tx:           &fakeTxManager{},
		client:       client,
		service:      service,
		bia:          bia,
		ana:          ana,
		receptionist: &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Staff: rita, Role: rita.Role},
		biaViewer:    &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Staff: bia, Role: bia.Role},
		today:        today,
	}

	f.uc = NewUseCase(
		f.appointments,
		&fakeClientRepo{records: map[uuid.UUID]*domain.Client{client.ID: client}},
		&fakeServiceRepo{records: map[uuid.UUID]*domain.Service{service.ID: service}},
		&fakeStaffRepo{records: map[uuid.UUID]*domain.Staff{bia.ID: bia, ana.ID: ana}},
		f.requests,
		fakeSettings{settings: domain.DefaultSettings()},
		f.notifier,
		f.tx,
		nopLogger{},
	).WithTimeProvider(fixedTime{now: today.Add(14 * time.Hour)})

	return f
}

func (f *fixture) request(viewer *domain.Viewer, staffID uuid.UUID, date time.Time, t string) *Request {
	return &Request{
		Viewer:    viewer,
		ClientID:  f.client.ID,
		ServiceID: f.service.ID,
		StaffID:   staffID,
		Date:      date,
		Time:      types.TimeString(t),
		Notes:     ptr.Ptr("  primeira vez  "),
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	resp, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, "09:20"))
	require.NoError(t, err)

	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, "Bia", resp.StaffName)
	assert.Equal(t, "primeira vez", *resp.Notes)
	assert.True(t, resp.Date.Equal(tomorrow))
	assert.Len(t, f.appointments.records, 1)
	assert.Equal(t, 1, f.tx.calls)
	assert.Len(t, f.notifier.created, 1)
}

func TestCreateAppointment_TodayIsAllowed(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, f.today, "08:00"))
	assert.NoError(t, err)
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	f := newFixture()
	yesterday := f.today.AddDate(0, 0, -1)

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, yesterday, "09:20"))
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, f.appointments.records)
	assert.Zero(t, f.tx.calls)
	assert.Empty(t, f.notifier.created)
}

func TestCreateAppointment_ManicuristBooksOnlyOwnSchedule(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	_, err := f.uc.Execute(context.Background(), f.request(f.biaViewer, f.ana.ID, tomorrow, "09:20"))
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.uc.Execute(context.Background(), f.request(f.biaViewer, f.bia.ID, tomorrow, "09:20"))
	assert.NoError(t, err)
}

func TestCreateAppointment_InvalidSlots(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		time string
	}{
		{name: "off grid", time: "09:00"},
		{name: "lunch", time: "12:00"},
		{name: "after closing", time: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, tt.time))
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
	assert.Empty(t, f.appointments.records)
}

func TestCreateAppointment_SlotTaken(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, "10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, "10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// тот же слот у другого мастера свободен
	_, err = f.uc.Execute(context.Background(), f.request(f.receptionist, f.ana.ID, tomorrow, "10:00"))
	assert.NoError(t, err)
}

func TestCreateAppointment_CancelledDoesNotOccupySlot(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)
	f.appointments.records = append(f.appointments.records, &domain.Appointment{
		ID: uuid.New(), StaffID: f.bia.ID, Date: tomorrow, Time: "10:00", Status: domain.StatusCancelled,
	})

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, "10:00"))
	assert.NoError(t, err)
}

func TestCreateAppointment_ApprovedDayOff(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)
	f.requests.records = []*domain.ScheduleRequest{
		{ID: uuid.New(), StaffID: f.bia.ID, Date: tomorrow, Status: domain.RequestApproved},
	}

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, tomorrow, "09:20"))
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestCreateAppointment_NotFound(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	req := f.request(f.receptionist, f.bia.ID, tomorrow, "09:20")
	req.ClientID = uuid.New()
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)

	req = f.request(f.receptionist, f.bia.ID, tomorrow, "09:20")
	req.ServiceID = uuid.New()
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = f.uc.Execute(context.Background(), f.request(f.receptionist, uuid.New(), tomorrow, "09:20"))
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCreateAppointment_Validation(t *testing.T) {
	f := newFixture()
	tomorrow := f.today.AddDate(0, 0, 1)

	req := f.request(f.receptionist, f.bia.ID, tomorrow, "9h20")
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = f.request(f.receptionist, uuid.Nil, tomorrow, "09:20")
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAppointment_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, f.today.AddDate(0, 0, 1), "09:20"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.notifier.created)
}

func TestCreateAppointment_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), f.request(f.receptionist, f.bia.ID, f.today.AddDate(0, 0, 1), "09:20"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.notifier.created)
}
