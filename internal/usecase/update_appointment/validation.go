package update_appointment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Viewer == nil {
		return fmt.Errorf("%w: viewer is required", ErrInvalidInput)
	}

	if req.ID == uuid.Nil {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	for name, id := range map[string]*uuid.UUID{"clientId": req.ClientID, "serviceId": req.ServiceID, "staffId": req.StaffID} {
		if id != nil && *id == uuid.Nil {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, name)
		}
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	if req.Status != nil && !domain.AppointmentStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Notes != nil && len([]rune(strings.TrimSpace(*req.Notes))) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// applyChanges переносит изменения запроса на копию записи
func applyChanges(current *domain.Appointment, req *Request) *domain.Appointment {
	next := *current
	if req.ClientID != nil {
		next.ClientID = *req.ClientID
	}
	if req.ServiceID != nil {
		next.ServiceID = *req.ServiceID
	}
	if req.StaffID != nil {
		next.StaffID = *req.StaffID
	}
	if req.Date != nil {
		next.Date = domain.DateOnly(*req.Date)
	}
	if req.Time != nil {
		next.Time = *req.Time
	}
	if req.Status != nil {
		next.Status = domain.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		trimmed := strings.TrimSpace(*req.Notes)
		if trimmed == "" {
			next.Notes = nil
		} else {
			next.Notes = &trimmed
		}
	}
	return &next
}

// isMoved сменился мастер, дата или время
func isMoved(current, next *domain.Appointment) bool {
	return current.StaffID != next.StaffID ||
		!domain.IsSameDay(current.Date, next.Date) ||
		!current.Time.Equal(next.Time)
}

// validateSlot время должно совпадать со слотом сетки и не попадать на обед
func validateSlot(settings domain.Settings, t types.TimeString) error {
	slots, err := settings.DaySlots()
	if err != nil {
		return fmt.Errorf("%w: failed to build time grid: %v", ErrInternal, err)
	}

	slot, ok := domain.FindSlot(slots, t)
	if !ok {
		return fmt.Errorf("%w: %s is not on the %d-minute grid", ErrInvalidTimeSlot, t, settings.AppointmentDuration)
	}
	if slot.IsLunch {
		return fmt.Errorf("%w: %s is lunch time", ErrInvalidTimeSlot, t)
	}
	return nil
}

// isSlotTaken активная запись того же мастера на то же время, кроме самой изменяемой
func isSlotTaken(appointments []*domain.Appointment, self uuid.UUID, t types.TimeString) bool {
	for _, a := range appointments {
		if a.ID != self && a.IsActive() && a.Time.Equal(t) {
			return true
		}
	}
	return false
}
