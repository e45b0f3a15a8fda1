package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Viewer == nil {
		return fmt.Errorf("%w: viewer is required", ErrInvalidInput)
	}

	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len([]rune(strings.TrimSpace(*req.Notes))) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate запись на прошедшую дату запрещена, сегодняшняя допустима
func validateDate(date, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, date.Format(domain.DateFormat), now.Format(domain.DateFormat))
	}
	return nil
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

// isSlotTaken активная запись того же мастера на то же время
func isSlotTaken(appointments []*domain.Appointment, t types.TimeString) bool {
	for _, a := range appointments {
		if a.IsActive() && a.Time.Equal(t) {
			return true
		}
	}
	return false
}

// normalizeNotes пустые заметки не сохраняем
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
