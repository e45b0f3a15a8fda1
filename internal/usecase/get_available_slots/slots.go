package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// buildSlots размечает слоты дня. Обеденные слоты не возвращаются.
// Сегодня слот доступен, пока не истекло время опоздания (lateTolerance) от его начала.
func buildSlots(
	grid []domain.TimeSlot,
	appointments []*domain.Appointment,
	date time.Time,
	now time.Time,
	lateTolerance int,
) []Slot {
	taken := make(map[types.TimeString]bool, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			taken[a.Time] = true
		}
	}

	cutoff := types.TimeString("")
	if domain.IsSameDay(date, now) {
		current := types.NewTimeString(now)
		if shifted, err := current.AddMinutes(-lateTolerance); err == nil {
			cutoff = shifted
		}
	}

	result := make([]Slot, 0, len(grid))
	for _, s := range grid {
		if s.IsLunch {
			continue
		}
		available := !taken[s.Time]
		if !cutoff.IsZero() && s.Time.IsBefore(cutoff) {
			available = false
		}
		result = append(result, Slot{Time: s.Time, Available: available})
	}

	return result
}

// markUnavailable все слоты заняты (выходной мастера)
func markUnavailable(slots []Slot) []Slot {
	for i := range slots {
		slots[i].Available = false
	}
	return slots
}
