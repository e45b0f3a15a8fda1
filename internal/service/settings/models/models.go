package models

import (
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// TimeWindow интервал времени "HH:MM" - "HH:MM"
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusinessSettings настройки салона
type BusinessSettings struct {
	BusinessName         string     `json:"businessName"`
	BusinessPhone        string     `json:"businessPhone"`
	WorkingHours         TimeWindow `json:"workingHours"`
	LunchTime            TimeWindow `json:"lunchTime"`
	AppointmentDuration  int        `json:"appointmentDuration"` // минуты
	WorkDays             []int      `json:"workDays"`            // 0 = воскресенье
	LateToleranceMinutes int        `json:"lateToleranceMinutes"`
	CommissionRate       float64    `json:"commissionRate"` // 0..1
}

// Preferences личные настройки пользователя
type Preferences struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications string `json:"notifications"` // granted | denied | default
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.Settings) *BusinessSettings {
	return &BusinessSettings{
		BusinessName:         s.BusinessName,
		BusinessPhone:        s.BusinessPhone,
		WorkingHours:         TimeWindow{Start: s.WorkingHours.Start.String(), End: s.WorkingHours.End.String()},
		LunchTime:            TimeWindow{Start: s.LunchTime.Start.String(), End: s.LunchTime.End.String()},
		AppointmentDuration:  s.AppointmentDuration,
		WorkDays:             append([]int{}, s.WorkDays...),
		LateToleranceMinutes: s.LateToleranceMinutes,
		CommissionRate:       s.CommissionRate,
	}
}

// ToDomain конвертирует DTO в domain модель; время приводится к "HH:MM"
func (b *BusinessSettings) ToDomain() (domain.Settings, error) {
	window := func(w TimeWindow) (domain.TimeWindow, error) {
		start, err := types.NewTimeStringFromString(w.Start)
		if err != nil {
			return domain.TimeWindow{}, err
		}
		end, err := types.NewTimeStringFromString(w.End)
		if err != nil {
			return domain.TimeWindow{}, err
		}
		return domain.TimeWindow{Start: start, End: end}, nil
	}

	working, err := window(b.WorkingHours)
	if err != nil {
		return domain.Settings{}, err
	}
	lunch, err := window(b.LunchTime)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		BusinessName:         b.BusinessName,
		BusinessPhone:        b.BusinessPhone,
		WorkingHours:         working,
		LunchTime:            lunch,
		AppointmentDuration:  b.AppointmentDuration,
		WorkDays:             append([]int{}, b.WorkDays...),
		LateToleranceMinutes: b.LateToleranceMinutes,
		CommissionRate:       b.CommissionRate,
	}, nil
}

// FromDomainPreferences конвертирует domain модель в DTO
func FromDomainPreferences(p domain.Preferences) *Preferences {
	return &Preferences{
		Theme:         p.Theme,
		Language:      p.Language,
		Notifications: string(p.Notifications),
	}
}

// ToDomain конвертирует DTO в domain модель
func (p *Preferences) ToDomain() domain.Preferences {
	return domain.Preferences{
		Theme:         p.Theme,
		Language:      p.Language,
		Notifications: domain.NotificationPermission(p.Notifications),
	}
}
