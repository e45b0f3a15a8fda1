package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// ErrInvalidSlotDuration slot duration must be positive
var ErrInvalidSlotDuration = errors.New("domain: slot duration must be positive")

// TimeSlot one bookable unit of the day grid
type TimeSlot struct {
	Time    types.TimeString
	IsLunch bool
}

// GenerateTimeSlots steps from start (inclusive) to end (exclusive) by slotDuration minutes.
// A slot is a lunch slot when lunchStart <= slot < lunchEnd.
// start >= end yields an empty grid; an invalid lunch window marks nothing.
func GenerateTimeSlots(start, end types.TimeString, slotDuration int, lunchStart, lunchEnd types.TimeString) ([]TimeSlot, error) {
	if slotDuration <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, slotDuration)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	lunchFrom, lunchTo := -1, -1
	if !lunchStart.IsZero() && !lunchEnd.IsZero() {
		if lunchFrom, err = lunchStart.Minutes(); err != nil {
			return nil, fmt.Errorf("lunch start: %w", err)
		}
		if lunchTo, err = lunchEnd.Minutes(); err != nil {
			return nil, fmt.Errorf("lunch end: %w", err)
		}
	}

	slots := make([]TimeSlot, 0)
	for m := startMin; m < endMin; m += slotDuration {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{
			Time:    label,
			IsLunch: m >= lunchFrom && m < lunchTo,
		})
	}

	return slots, nil
}

// FindSlot looks up a slot by its label
func FindSlot(slots []TimeSlot, t types.TimeString) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Time.Equal(t) {
			return s, true
		}
	}
	return TimeSlot{}, false
}
