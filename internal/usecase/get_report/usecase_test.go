package get_report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type fakeAppointmentRepo struct {
	records    []*domain.Appointment
	lastFilter domain.AppointmentFilter
	err        error
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range f.records {
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

type fakeServiceRepo struct{ records []*domain.Service }

func (f *fakeServiceRepo) List(context.Context) ([]*domain.Service, error) { return f.records, nil }

type fakeStaffRepo struct{ records []*domain.Staff }

func (f *fakeStaffRepo) List(context.Context) ([]*domain.Staff, error) { return f.records, nil }

type fakeSettings struct{ rate float64 }

func (f fakeSettings) Business(context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()
	s.CommissionRate = f.rate
	return s, nil
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
	admin        *domain.Viewer
	recept       *domain.Viewer
	bia          *domain.Viewer
}

func newFixture() *fixture {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	manicure := &domain.Service{ID: uuid.New(), Name: "Manicure", Price: decimal.RequireFromString("20.00")}
	admin := &domain.Staff{ID: uuid.New(), Name: "Carla", Role: domain.RoleAdmin}
	recept := &domain.Staff{ID: uuid.New(), Name: "Rita", Role: domain.RoleReceptionist}
	bia := &domain.Staff{ID: uuid.New(), Name: "Bia", Role: domain.RoleManicurist}
	ana := &domain.Staff{ID: uuid.New(), Name: "Ana", Role: domain.RoleManicurist}

	appointments := &fakeAppointmentRepo{records: []*domain.Appointment{
		{ID: uuid.New(), StaffID: bia.ID, ServiceID: manicure.ID, Date: today, Status: domain.StatusCompleted},
		{ID: uuid.New(), StaffID: bia.ID, ServiceID: manicure.ID, Date: today.AddDate(0, 0, -2), Status: domain.StatusCompleted},
		{ID: uuid.New(), StaffID: ana.ID, ServiceID: manicure.ID, Date: today, Status: domain.StatusCompleted},
	}}

	viewer := func(s *domain.Staff) *domain.Viewer {
		return &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Staff: s, Role: s.Role}
	}

	return &fixture{
		uc: NewUseCase(
			appointments,
			&fakeServiceRepo{records: []*domain.Service{manicure}},
			&fakeStaffRepo{records: []*domain.Staff{admin, recept, bia, ana}},
			fakeSettings{rate: 0.5},
			nopLogger{},
		).WithTimeProvider(fixedTime{now: today.Add(12 * time.Hour)}),
		appointments: appointments,
		admin:        viewer(admin),
		recept:       viewer(recept),
		bia:          viewer(bia),
	}
}

func TestGetReport_AdminSeesSalon(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin})
	require.NoError(t, err)

	assert.Equal(t, ScopeSalon, resp.Scope)
	assert.Equal(t, 3, resp.Report.CompletedCount)
	assert.Equal(t, "60.00", resp.Report.TotalRevenue.StringFixed(2))
	assert.Equal(t, "40.00", resp.Report.DailyRevenue.StringFixed(2))
	assert.Len(t, resp.Report.Staff, 2)
	assert.Equal(t, []domain.AppointmentStatus{domain.StatusCompleted}, f.appointments.lastFilter.Statuses)
}

func TestGetReport_ManicuristSeesOwn(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{Viewer: f.bia})
	require.NoError(t, err)

	assert.Equal(t, ScopeOwn, resp.Scope)
	assert.Equal(t, 2, resp.Report.CompletedCount)
	assert.Equal(t, "40.00", resp.Report.TotalRevenue.StringFixed(2))
	assert.Equal(t, "20.00", resp.Report.AverageTicket.StringFixed(2))
	require.Len(t, resp.Report.Staff, 1)
	assert.Equal(t, "Bia", resp.Report.Staff[0].StaffName)
	assert.Equal(t, "20.00", resp.Report.Staff[0].Commission.StringFixed(2))
}

func TestGetReport_ReceptionistDenied(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.recept})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetReport_ExplicitDate(t *testing.T) {
	f := newFixture()
	date := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, "20.00", resp.Report.DailyRevenue.StringFixed(2))
	assert.True(t, resp.Report.AsOf.Equal(date))
}

func TestGetReport_RepositoryFailure(t *testing.T) {
	f := newFixture()
	f.appointments.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), &Request{Viewer: f.admin})
	assert.ErrorIs(t, err, ErrInternal)
}
