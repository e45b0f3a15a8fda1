package domain

// Default salon settings
const (
	DefaultBusinessName         = "Agenda de Salão"
	DefaultWorkStart            = "08:00"
	DefaultWorkEnd              = "18:00"
	DefaultLunchStart           = "12:00"
	DefaultLunchEnd             = "13:00"
	DefaultSlotDurationMinutes  = 40
	DefaultLateToleranceMinutes = 10
	DefaultCommissionRate       = 0.5
	DefaultTheme                = "light-mode"
	DefaultLanguage             = "pt-BR"
)

// DefaultWorkDays Monday..Saturday (time.Weekday numbering, Sunday = 0)
var DefaultWorkDays = []int{1, 2, 3, 4, 5, 6}

// Business validation constants
const (
	MinSlotDurationMinutes  = 5
	MaxSlotDurationMinutes  = 480 // 8 hours
	MaxServiceDuration      = 600
	MaxNotesLength          = 500
	MaxReasonLength         = 500
	MaxNameLength           = 200
	MaxLateToleranceMinutes = 120
	TopServicesLimit        = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses statuses that occupy a staff member's slot
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusCompleted,
}

// DefaultCatalog services seeded into an empty catalog
var DefaultCatalog = []struct {
	Name     string
	Duration int
	Price    string
}{
	{Name: "Manicure", Duration: 30, Price: "25.00"},
	{Name: "Pedicure", Duration: 45, Price: "35.00"},
	{Name: "Esmaltação", Duration: 20, Price: "15.00"},
}
