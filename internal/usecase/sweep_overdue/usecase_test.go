package sweep_overdue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type fakeAppointmentRepo struct {
	records     map[uuid.UUID]*domain.Appointment
	failFor     map[uuid.UUID]bool
	lastFilter  domain.AppointmentFilter
	transitions int
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0)
	for _, a := range f.records {
		if filter.EndDate != nil && a.Date.After(*filter.EndDate) {
			continue
		}
		if a.Status != domain.StatusScheduled {
			continue
		}
		cp := *a
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to domain.AppointmentStatus) (bool, error) {
	if f.failFor[id] {
		return false, errors.New("deadlock detected")
	}
	a, ok := f.records[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	f.transitions++
	return true, nil
}

type fakeMetrics struct{ transitioned, failed int }

func (f *fakeMetrics) AddNoShowTransitions(transitioned, failed int) {
	f.transitioned += transitioned
	f.failed += failed
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seed(today time.Time) (*fakeAppointmentRepo, map[string]*domain.Appointment) {
	named := map[string]*domain.Appointment{
		"yesterday scheduled": {ID: uuid.New(), Date: today.AddDate(0, 0, -1), Status: domain.StatusScheduled},
		"last week scheduled": {ID: uuid.New(), Date: today.AddDate(0, 0, -7), Status: domain.StatusScheduled},
		"yesterday completed": {ID: uuid.New(), Date: today.AddDate(0, 0, -1), Status: domain.StatusCompleted},
		"yesterday cancelled": {ID: uuid.New(), Date: today.AddDate(0, 0, -1), Status: domain.StatusCancelled},
		"today scheduled":     {ID: uuid.New(), Date: today, Status: domain.StatusScheduled},
		"tomorrow scheduled":  {ID: uuid.New(), Date: today.AddDate(0, 0, 1), Status: domain.StatusScheduled},
	}
	repo := &fakeAppointmentRepo{records: map[uuid.UUID]*domain.Appointment{}, failFor: map[uuid.UUID]bool{}}
	for _, a := range named {
		repo.records[a.ID] = a
	}
	return repo, named
}

func TestTick_TransitionsOnlyOverdueScheduled(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo, named := seed(today)
	metrics := &fakeMetrics{}
	uc := NewUseCase(repo, metrics, nopLogger{})

	result, err := uc.Tick(context.Background(), today.Add(8*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Checked)
	assert.Equal(t, 2, result.Transitioned)
	assert.Equal(t, domain.StatusNoShow, named["yesterday scheduled"].Status)
	assert.Equal(t, domain.StatusNoShow, named["last week scheduled"].Status)
	assert.Equal(t, domain.StatusCompleted, named["yesterday completed"].Status)
	assert.Equal(t, domain.StatusCancelled, named["yesterday cancelled"].Status)
	assert.Equal(t, domain.StatusScheduled, named["today scheduled"].Status)
	assert.Equal(t, domain.StatusScheduled, named["tomorrow scheduled"].Status)
	assert.Equal(t, 2, metrics.transitioned)

	require.NotNil(t, repo.lastFilter.EndDate)
	assert.True(t, repo.lastFilter.EndDate.Equal(today.AddDate(0, 0, -1)))
}

func TestTick_Idempotent(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo, _ := seed(today)
	uc := NewUseCase(repo, &fakeMetrics{}, nopLogger{})

	_, err := uc.Tick(context.Background(), today)
	require.NoError(t, err)

	second, err := uc.Tick(context.Background(), today)
	require.NoError(t, err)
	assert.Zero(t, second.Checked)
	assert.Zero(t, second.Transitioned)
	assert.Equal(t, 2, repo.transitions)
}

func TestTick_FailuresDoNotStopTheSweep(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo, named := seed(today)
	repo.failFor[named["last week scheduled"].ID] = true
	metrics := &fakeMetrics{}
	uc := NewUseCase(repo, metrics, nopLogger{})

	result, err := uc.Tick(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Transitioned)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, metrics.failed)
	assert.Equal(t, domain.StatusNoShow, named["yesterday scheduled"].Status)
}

func TestExecute_AdminOnly(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo, _ := seed(today)
	uc := NewUseCase(repo, &fakeMetrics{}, nopLogger{})
	uc.timeProvider = fixedTime{now: today}

	_, err := uc.Execute(context.Background(), &domain.Viewer{Role: domain.RoleReceptionist})
	assert.ErrorIs(t, err, ErrAccessDenied)

	result, err := uc.Execute(context.Background(), &domain.Viewer{Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Transitioned)
}
