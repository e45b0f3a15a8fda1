package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequest_Transitions(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	r := &ScheduleRequest{Status: RequestPending}
	require.NoError(t, r.Approve(now))
	assert.Equal(t, RequestApproved, r.Status)
	require.NotNil(t, r.ApprovedAt)
	assert.Nil(t, r.RejectedAt)

	assert.ErrorIs(t, r.Reject(now), ErrRequestAlreadyDecided)
	assert.ErrorIs(t, r.Approve(now), ErrRequestAlreadyDecided)

	r = &ScheduleRequest{Status: RequestPending}
	require.NoError(t, r.Reject(now))
	assert.Equal(t, RequestRejected, r.Status)
	assert.NotNil(t, r.RejectedAt)
	assert.ErrorIs(t, r.Approve(now), ErrRequestAlreadyDecided)
}

func TestValidateRequestDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	assert.ErrorIs(t, ValidateRequestDate(day("2025-03-09"), now), ErrRequestDateTooEarly)
	assert.ErrorIs(t, ValidateRequestDate(day("2025-03-10"), now), ErrRequestDateTooEarly)
	assert.NoError(t, ValidateRequestDate(day("2025-03-11"), now))
	assert.NoError(t, ValidateRequestDate(day("2025-06-01"), now))
}

func TestFindBlockingRequest(t *testing.T) {
	staffID := uuid.New()
	other := uuid.New()
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	first := &ScheduleRequest{ID: uuid.New(), StaffID: staffID, Status: RequestPending, CreatedAt: morning}
	requests := []*ScheduleRequest{
		{ID: uuid.New(), StaffID: staffID, Status: RequestApproved, CreatedAt: yesterday},
		{ID: uuid.New(), StaffID: other, Status: RequestPending, CreatedAt: morning},
		first,
	}

	// pending request of today blocks a second submission
	assert.Same(t, first, FindBlockingRequest(requests, staffID, now))

	// once rejected the staff member may submit again
	require.NoError(t, first.Reject(now))
	assert.Nil(t, FindBlockingRequest(requests, staffID, now))

	// approved of today blocks as well
	first.Status = RequestApproved
	assert.Same(t, first, FindBlockingRequest(requests, staffID, now))
}

func TestHasApprovedBlock(t *testing.T) {
	staffID := uuid.New()
	requests := []*ScheduleRequest{
		{StaffID: staffID, Date: day("2025-03-15"), Status: RequestApproved},
		{StaffID: staffID, Date: day("2025-03-16"), Status: RequestPending},
	}

	assert.True(t, HasApprovedBlock(requests, staffID, day("2025-03-15")))
	assert.False(t, HasApprovedBlock(requests, staffID, day("2025-03-16")))
	assert.False(t, HasApprovedBlock(requests, uuid.New(), day("2025-03-15")))
}
