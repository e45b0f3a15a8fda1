package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregate_Example(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	svc := &Service{ID: uuid.New(), Name: "Manicure", DurationMinutes: 30, Price: money("20.00")}
	staff := &Staff{ID: uuid.New(), Name: "Bia", Role: RoleManicurist}

	var appointments []*Appointment
	for _, status := range []AppointmentStatus{StatusCompleted, StatusCompleted, StatusCancelled, StatusNoShow} {
		appointments = append(appointments, &Appointment{
			ID: uuid.New(), ServiceID: svc.ID, StaffID: staff.ID, Date: day("2025-03-10"), Status: status,
		})
	}

	report := Aggregate(appointments, []*Service{svc}, []*Staff{staff}, money("0.5"), asOf)

	assert.Equal(t, "40.00", report.TotalRevenue.StringFixed(2))
	assert.Equal(t, 2, report.CompletedCount)
	assert.Equal(t, "20.00", report.AverageTicket.StringFixed(2))
	require.Len(t, report.Staff, 1)
	assert.Equal(t, "20.00", report.Staff[0].Commission.StringFixed(2))
	assert.Equal(t, 2, report.Staff[0].Count)
	assert.Equal(t, "Bia", report.Staff[0].StaffName)
	require.Len(t, report.TopServices, 1)
	assert.Equal(t, "Manicure", report.TopServices[0].Name)
	assert.Equal(t, 2, report.TopServices[0].Count)
	assert.Equal(t, "40.00", report.TopServices[0].Revenue.StringFixed(2))
}

func TestAggregate_Empty(t *testing.T) {
	report := Aggregate(nil, nil, nil, money("0.5"), time.Now())

	assert.True(t, report.TotalRevenue.IsZero())
	assert.True(t, report.AverageTicket.IsZero())
	assert.Equal(t, 0, report.CompletedCount)
	assert.Empty(t, report.Staff)
	assert.Empty(t, report.TopServices)
}

func TestAggregate_MissingServiceCountsAsZero(t *testing.T) {
	staff := &Staff{ID: uuid.New(), Name: "Bia"}
	appointments := []*Appointment{
		{ServiceID: uuid.New(), StaffID: staff.ID, Date: day("2025-03-10"), Status: StatusCompleted},
	}

	report := Aggregate(appointments, nil, []*Staff{staff}, money("0.4"), day("2025-03-10"))

	assert.Equal(t, 1, report.CompletedCount)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Empty(t, report.TopServices)
	require.Len(t, report.Staff, 1)
	assert.True(t, report.Staff[0].Commission.IsZero())
}

func TestAggregate_Buckets(t *testing.T) {
	asOf := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := &Service{ID: uuid.New(), Name: "Pedicure", Price: money("10")}
	staffID := uuid.New()

	dates := []string{
		"2025-03-10", // today, week, month
		"2025-03-03", // exactly 7 days back: week, month
		"2025-03-01", // month only
		"2025-02-28", // total only
	}
	var appointments []*Appointment
	for _, d := range dates {
		appointments = append(appointments, &Appointment{ServiceID: svc.ID, StaffID: staffID, Date: day(d), Status: StatusCompleted})
	}

	report := Aggregate(appointments, []*Service{svc}, nil, money("0.5"), asOf)

	assert.Equal(t, "10", report.DailyRevenue.String())
	assert.Equal(t, "20", report.WeeklyRevenue.String())
	assert.Equal(t, "30", report.MonthlyRevenue.String())
	assert.Equal(t, "40", report.TotalRevenue.String())
	assert.Empty(t, report.Staff, "staff outside the roster are not reported")
}

func TestAggregate_StaffAndTopServices(t *testing.T) {
	asOf := day("2025-03-10")
	idle := &Staff{ID: uuid.New(), Name: "Idle"}
	low := &Staff{ID: uuid.New(), Name: "Low"}
	high := &Staff{ID: uuid.New(), Name: "High"}

	var services []*Service
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		services = append(services, &Service{ID: uuid.New(), Name: name, Price: decimal.NewFromInt(int64(10 * (i + 1)))})
	}

	var appointments []*Appointment
	add := func(svc *Service, staff *Staff, n int) {
		for i := 0; i < n; i++ {
			appointments = append(appointments, &Appointment{ServiceID: svc.ID, StaffID: staff.ID, Date: asOf, Status: StatusCompleted})
		}
	}
	add(services[0], low, 1)  // A: 1
	add(services[1], low, 2)  // B: 2
	add(services[2], low, 1)  // C: 1
	add(services[3], high, 2) // D: 2
	add(services[4], high, 1) // E: 1
	add(services[5], high, 1) // F: 1
	add(services[6], high, 1) // G: 1

	report := Aggregate(appointments, services, []*Staff{idle, low, high}, money("0.5"), asOf)

	require.Len(t, report.Staff, 2)
	assert.Equal(t, "High", report.Staff[0].StaffName)
	assert.Equal(t, "Low", report.Staff[1].StaffName)

	names := make([]string, 0, len(report.TopServices))
	for _, s := range report.TopServices {
		names = append(names, s.Name)
	}
	// count desc, ties keep first-seen order, capped at 5
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, names)
}
