package settings

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/types"
)

// businessRecord JSON, хранящийся под ключом "business".
// Ключи совпадают с форматом настроек веб-клиента.
type businessRecord struct {
	BusinessName  string `json:"businessName"`
	BusinessPhone string `json:"businessPhone"`
	WorkingHours  struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"workingHours"`
	LunchTime struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"lunchTime"`
	AppointmentDuration int     `json:"appointmentDuration"`
	WorkDays            []int   `json:"workDays"`
	LateTolerance       int     `json:"lateTolerance"`
	CommissionRate      float64 `json:"commissionRate"`
}

type preferencesRecord struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications string `json:"notifications"`
}

// decodeBusiness накладывает сохранённые поля поверх значений по умолчанию
func decodeBusiness(raw []byte) (*domain.Settings, error) {
	rec := toBusinessRecord(domain.DefaultSettings())
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: business: %v", ErrDecode, err)
	}

	s := domain.Settings{
		BusinessName:         rec.BusinessName,
		BusinessPhone:        rec.BusinessPhone,
		WorkingHours:         domain.TimeWindow{Start: types.TimeString(rec.WorkingHours.Start), End: types.TimeString(rec.WorkingHours.End)},
		LunchTime:            domain.TimeWindow{Start: types.TimeString(rec.LunchTime.Start), End: types.TimeString(rec.LunchTime.End)},
		AppointmentDuration:  rec.AppointmentDuration,
		WorkDays:             rec.WorkDays,
		LateToleranceMinutes: rec.LateTolerance,
		CommissionRate:       rec.CommissionRate,
	}
	return &s, nil
}

func encodeBusiness(s domain.Settings) ([]byte, error) {
	return json.Marshal(toBusinessRecord(s))
}

func toBusinessRecord(s domain.Settings) businessRecord {
	var rec businessRecord
	rec.BusinessName = s.BusinessName
	rec.BusinessPhone = s.BusinessPhone
	rec.WorkingHours.Start = s.WorkingHours.Start.String()
	rec.WorkingHours.End = s.WorkingHours.End.String()
	rec.LunchTime.Start = s.LunchTime.Start.String()
	rec.LunchTime.End = s.LunchTime.End.String()
	rec.AppointmentDuration = s.AppointmentDuration
	rec.WorkDays = s.WorkDays
	rec.LateTolerance = s.LateToleranceMinutes
	rec.CommissionRate = s.CommissionRate
	return rec
}

func decodePreferences(raw []byte) (*domain.Preferences, error) {
	def := domain.DefaultPreferences()
	rec := preferencesRecord{
		Theme:         def.Theme,
		Language:      def.Language,
		Notifications: string(def.Notifications),
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: preferences: %v", ErrDecode, err)
	}

	return &domain.Preferences{
		Theme:         rec.Theme,
		Language:      rec.Language,
		Notifications: domain.NotificationPermission(rec.Notifications),
	}, nil
}

func encodePreferences(p domain.Preferences) ([]byte, error) {
	return json.Marshal(preferencesRecord{
		Theme:         p.Theme,
		Language:      p.Language,
		Notifications: string(p.Notifications),
	})
}
