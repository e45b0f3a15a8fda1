package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleRequestStatus state of a schedule-block request
type ScheduleRequestStatus string

const (
	RequestPending  ScheduleRequestStatus = "pending"
	RequestApproved ScheduleRequestStatus = "approved"
	RequestRejected ScheduleRequestStatus = "rejected"
)

func (s ScheduleRequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

var (
	// ErrRequestAlreadyDecided approve/reject of a request that is no longer pending
	ErrRequestAlreadyDecided = errors.New("domain: schedule request already decided")

	// ErrRequestDateTooEarly the blocked day must be tomorrow or later
	ErrRequestDateTooEarly = errors.New("domain: schedule request date must be tomorrow or later")
)

// ScheduleRequest a manicurist's request to block a future day
type ScheduleRequest struct {
	ID         uuid.UUID
	StaffID    uuid.UUID
	Date       time.Time
	Reason     string
	Status     ScheduleRequestStatus
	CreatedAt  time.Time
	ApprovedAt *time.Time
	RejectedAt *time.Time
}

// IsBlocking pending and approved requests count against the one-per-day rule
func (r *ScheduleRequest) IsBlocking() bool {
	return r.Status == RequestPending || r.Status == RequestApproved
}

// Approve pending -> approved
func (r *ScheduleRequest) Approve(now time.Time) error {
	if r.Status != RequestPending {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyDecided, r.Status)
	}
	r.Status = RequestApproved
	r.ApprovedAt = &now
	return nil
}

// Reject pending -> rejected
func (r *ScheduleRequest) Reject(now time.Time) error {
	if r.Status != RequestPending {
		return fmt.Errorf("%w: status is %s", ErrRequestAlreadyDecided, r.Status)
	}
	r.Status = RequestRejected
	r.RejectedAt = &now
	return nil
}

// ValidateRequestDate the requested day must be at least tomorrow
func ValidateRequestDate(date, now time.Time) error {
	if DateOnly(date).Before(AddDays(now, 1)) {
		return fmt.Errorf("%w: got %s", ErrRequestDateTooEarly, date.Format(DateFormat))
	}
	return nil
}

// FindBlockingRequest a pending or approved request created today by the staff member.
// CreatedAt is compared in now's location.
func FindBlockingRequest(requests []*ScheduleRequest, staffID uuid.UUID, now time.Time) *ScheduleRequest {
	for _, r := range requests {
		if r.StaffID != staffID || !r.IsBlocking() {
			continue
		}
		if IsSameDay(r.CreatedAt.In(now.Location()), now) {
			return r
		}
	}
	return nil
}

// HasApprovedBlock an approved request blocks the staff member for that day
func HasApprovedBlock(requests []*ScheduleRequest, staffID uuid.UUID, date time.Time) bool {
	for _, r := range requests {
		if r.StaffID == staffID && r.Status == RequestApproved && IsSameDay(r.Date, date) {
			return true
		}
	}
	return false
}

// ScheduleRequestFilter selection criteria for stored requests
type ScheduleRequestFilter struct {
	StaffID       *uuid.UUID
	Status        *ScheduleRequestStatus
	Date          *time.Time // blocked day
	CreatedFrom   *time.Time // created_at >= CreatedFrom
	CreatedBefore *time.Time // created_at < CreatedBefore
}
