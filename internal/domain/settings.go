package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// ErrInvalidSettings settings failed validation
var ErrInvalidSettings = errors.New("domain: invalid settings")

// TimeWindow [Start, End) within a day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Settings business configuration of the salon, mutable by admin
type Settings struct {
	BusinessName         string
	BusinessPhone        string
	WorkingHours         TimeWindow
	LunchTime            TimeWindow
	AppointmentDuration  int
	WorkDays             []int
	LateToleranceMinutes int
	CommissionRate       float64
}

// DefaultSettings values used until an admin saves settings
func DefaultSettings() Settings {
	return Settings{
		BusinessName:         DefaultBusinessName,
		WorkingHours:         TimeWindow{Start: DefaultWorkStart, End: DefaultWorkEnd},
		LunchTime:            TimeWindow{Start: DefaultLunchStart, End: DefaultLunchEnd},
		AppointmentDuration:  DefaultSlotDurationMinutes,
		WorkDays:             append([]int(nil), DefaultWorkDays...),
		LateToleranceMinutes: DefaultLateToleranceMinutes,
		CommissionRate:       DefaultCommissionRate,
	}
}

// Validate checks ranges and formats
func (s Settings) Validate() error {
	if strings.TrimSpace(s.BusinessName) == "" {
		return fmt.Errorf("%w: business name is required", ErrInvalidSettings)
	}
	for name, t := range map[string]types.TimeString{
		"working hours start": s.WorkingHours.Start,
		"working hours end":   s.WorkingHours.End,
		"lunch start":         s.LunchTime.Start,
		"lunch end":           s.LunchTime.End,
	} {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidSettings, name, err)
		}
	}
	if s.WorkingHours.End.IsBefore(s.WorkingHours.Start) {
		return fmt.Errorf("%w: working hours end before start", ErrInvalidSettings)
	}
	if s.LunchTime.End.IsBefore(s.LunchTime.Start) {
		return fmt.Errorf("%w: lunch end before start", ErrInvalidSettings)
	}
	if s.AppointmentDuration < MinSlotDurationMinutes || s.AppointmentDuration > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: appointment duration must be between %d and %d minutes",
			ErrInvalidSettings, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	for _, d := range s.WorkDays {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return fmt.Errorf("%w: work day %d out of range", ErrInvalidSettings, d)
		}
	}
	if s.LateToleranceMinutes < 0 || s.LateToleranceMinutes > MaxLateToleranceMinutes {
		return fmt.Errorf("%w: late tolerance out of range", ErrInvalidSettings)
	}
	if s.CommissionRate < 0 || s.CommissionRate > 1 {
		return fmt.Errorf("%w: commission rate must be between 0 and 1", ErrInvalidSettings)
	}
	return nil
}

// IsWorkDay reports whether the salon opens on date's weekday
func (s Settings) IsWorkDay(date time.Time) bool {
	wd := int(date.Weekday())
	for _, d := range s.WorkDays {
		if d == wd {
			return true
		}
	}
	return false
}

// DaySlots the slot grid of a working day
func (s Settings) DaySlots() ([]TimeSlot, error) {
	return GenerateTimeSlots(
		s.WorkingHours.Start,
		s.WorkingHours.End,
		s.AppointmentDuration,
		s.LunchTime.Start,
		s.LunchTime.End,
	)
}

// NotificationPermission tri-state permission, same values as the browser API
type NotificationPermission string

const (
	NotificationsGranted NotificationPermission = "granted"
	NotificationsDenied  NotificationPermission = "denied"
	NotificationsDefault NotificationPermission = "default"
)

func (p NotificationPermission) IsValid() bool {
	return p == NotificationsGranted || p == NotificationsDenied || p == NotificationsDefault
}

// Preferences personal settings of one user
type Preferences struct {
	Theme         string
	Language      string
	Notifications NotificationPermission
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         DefaultTheme,
		Language:      DefaultLanguage,
		Notifications: NotificationsDefault,
	}
}

// Validate checks the closed values
func (p Preferences) Validate() error {
	if p.Theme != "light-mode" && p.Theme != "dark-mode" {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, p.Theme)
	}
	if strings.TrimSpace(p.Language) == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidSettings)
	}
	if !p.Notifications.IsValid() {
		return fmt.Errorf("%w: unknown notification permission %q", ErrInvalidSettings, p.Notifications)
	}
	return nil
}
