package schedulerequests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	requestRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/schedulerequest"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
)

type fakeRequestRepo struct {
	records    map[uuid.UUID]*domain.ScheduleRequest
	lastFilter domain.ScheduleRequestFilter
	// decidedElsewhere имитирует конкурентное решение между чтением и записью
	decidedElsewhere bool
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ScheduleRequest, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) GetByFilter(_ context.Context, filter domain.ScheduleRequestFilter) ([]*domain.ScheduleRequest, error) {
	f.lastFilter = filter
	result := make([]*domain.ScheduleRequest, 0)
	for _, r := range f.records {
		if filter.StaffID != nil && r.StaffID != *filter.StaffID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRequestRepo) SaveDecision(_ context.Context, req *domain.ScheduleRequest) (*domain.ScheduleRequest, error) {
	if f.decidedElsewhere || f.records[req.ID].Status != domain.RequestPending {
		return nil, requestRepo.ErrRequestNotPending
	}
	cp := *req
	f.records[req.ID] = &cp
	return &cp, nil
}

type fakeStaffRepo struct{ roster []*domain.Staff }

func (f *fakeStaffRepo) List(context.Context) ([]*domain.Staff, error) { return f.roster, nil }

type fakeNotifier struct{ decided []*domain.ScheduleRequest }

func (f *fakeNotifier) ScheduleRequestDecided(_ context.Context, r *domain.ScheduleRequest) {
	f.decided = append(f.decided, r)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	requests *fakeRequestRepo
	notifier *fakeNotifier
	admin    *domain.Viewer
	recept   *domain.Viewer
	bia      *domain.Viewer
	ana      *domain.Viewer
	pending  *domain.ScheduleRequest
	now      time.Time
}

func newFixture() *fixture {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	roster := []*domain.Staff{
		{ID: uuid.New(), Name: "Carla", Role: domain.RoleAdmin},
		{ID: uuid.New(), Name: "Rita", Role: domain.RoleReceptionist},
		{ID: uuid.New(), Name: "Bia", Role: domain.RoleManicurist},
		{ID: uuid.New(), Name: "Ana", Role: domain.RoleManicurist},
	}
	viewer := func(s *domain.Staff) *domain.Viewer {
		return &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Staff: s, Role: s.Role}
	}

	pending := &domain.ScheduleRequest{
		ID: uuid.New(), StaffID: roster[2].ID, Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Reason: "Consulta médica", Status: domain.RequestPending, CreatedAt: now,
	}
	other := &domain.ScheduleRequest{
		ID: uuid.New(), StaffID: roster[3].ID, Date: time.Date(2026, 3, 21, 0, 0, 0, 0, time.UTC),
		Reason: "Viagem", Status: domain.RequestApproved, CreatedAt: now,
	}

	requests := &fakeRequestRepo{records: map[uuid.UUID]*domain.ScheduleRequest{pending.ID: pending, other.ID: other}}
	notifier := &fakeNotifier{}
	svc := NewService(requests, &fakeStaffRepo{roster: roster}, notifier, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})

	return &fixture{
		svc: svc, requests: requests, notifier: notifier,
		admin: viewer(roster[0]), recept: viewer(roster[1]), bia: viewer(roster[2]), ana: viewer(roster[3]),
		pending: pending, now: now,
	}
}

func TestList_Visibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	all, err := f.svc.List(ctx, f.admin, nil)
	require.NoError(t, err)
	assert.Len(t, all.Requests, 2)

	all, err = f.svc.List(ctx, f.recept, nil)
	require.NoError(t, err)
	assert.Len(t, all.Requests, 2)

	own, err := f.svc.List(ctx, f.bia, nil)
	require.NoError(t, err)
	require.Len(t, own.Requests, 1)
	assert.Equal(t, "Bia", own.Requests[0].StaffName)
	assert.Equal(t, "2026-03-20", own.Requests[0].Date)
}

func TestList_StatusFilter(t *testing.T) {
	f := newFixture()

	pending, err := f.svc.List(context.Background(), f.admin, ptr.Ptr("pending"))
	require.NoError(t, err)
	require.Len(t, pending.Requests, 1)
	assert.Equal(t, f.pending.ID.String(), pending.Requests[0].ID)

	_, err = f.svc.List(context.Background(), f.admin, ptr.Ptr("archived"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ManicuristWithoutRecordSeesNothing(t *testing.T) {
	f := newFixture()
	orphan := &domain.Viewer{Identity: domain.Identity{UserID: uuid.New()}, Role: domain.RoleManicurist}

	resp, err := f.svc.List(context.Background(), orphan, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Requests)
}

func TestApprove(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Approve(context.Background(), f.admin, f.pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ApprovedAt)
	assert.Equal(t, f.now, *resp.ApprovedAt)
	assert.Equal(t, domain.RequestApproved, f.requests.records[f.pending.ID].Status)
	require.Len(t, f.notifier.decided, 1)

	_, err = f.svc.Reject(context.Background(), f.admin, f.pending.ID)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Len(t, f.notifier.decided, 1)
}

func TestReject(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Reject(context.Background(), f.admin, f.pending.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	assert.NotNil(t, resp.RejectedAt)
	assert.Nil(t, resp.ApprovedAt)
}

func TestDecide_OnlyAdmin(t *testing.T) {
	f := newFixture()

	for _, v := range []*domain.Viewer{f.recept, f.bia} {
		_, err := f.svc.Approve(context.Background(), v, f.pending.ID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
	assert.Equal(t, domain.RequestPending, f.requests.records[f.pending.ID].Status)
}

func TestDecide_NotFoundAndConcurrent(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Approve(context.Background(), f.admin, uuid.New())
	assert.ErrorIs(t, err, ErrRequestNotFound)

	f.requests.decidedElsewhere = true
	_, err = f.svc.Approve(context.Background(), f.admin, f.pending.ID)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Empty(t, f.notifier.decided)
}
