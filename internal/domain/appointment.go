package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal completed, cancelled and no-show never change automatically
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Appointment represents a booked service for a client with a staff member
type Appointment struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	Date      time.Time // calendar day, time of day ignored
	Time      types.TimeString
	Status    AppointmentStatus
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEditable is false for appointments dated strictly before today, whatever the status
func (a *Appointment) IsEditable(today time.Time) bool {
	return !IsDateInPast(a.Date, today)
}

// IsOverdue a scheduled appointment whose day has already passed
func (a *Appointment) IsOverdue(today time.Time) bool {
	return a.Status == StatusScheduled && IsDateInPast(a.Date, today)
}

// IsActive the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}

// CanTransitionTo user-driven transitions. Scheduled moves to any terminal state;
// terminal states may only be corrected while the appointment is editable (checked by the caller).
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	if a.Status == StatusScheduled {
		return true
	}
	return a.Status.IsTerminal()
}

// SelectOverdue returns the appointments the overdue sweep must move to no-show
func SelectOverdue(appointments []*Appointment, today time.Time) []*Appointment {
	overdue := make([]*Appointment, 0)
	for _, a := range appointments {
		if a.IsOverdue(today) {
			overdue = append(overdue, a)
		}
	}
	return overdue
}

// AppointmentFilter фильтр выборки записей
type AppointmentFilter struct {
	StartDate *time.Time          // включительно, nil - без ограничения
	EndDate   *time.Time          // включительно, nil - без ограничения
	StaffID   *uuid.UUID          // nil - все сотрудники
	Statuses  []AppointmentStatus // пусто - любые статусы
}
