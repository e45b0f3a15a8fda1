package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report revenue metrics over completed appointments
type Report struct {
	AsOf           time.Time
	TotalRevenue   decimal.Decimal
	DailyRevenue   decimal.Decimal
	WeeklyRevenue  decimal.Decimal
	MonthlyRevenue decimal.Decimal
	CompletedCount int
	AverageTicket  decimal.Decimal
	CommissionRate decimal.Decimal
	Staff          []StaffPerformance
	TopServices    []ServiceStat
}

// StaffPerformance revenue and commission of one staff member
type StaffPerformance struct {
	StaffID    uuid.UUID
	StaffName  string
	Revenue    decimal.Decimal
	Commission decimal.Decimal
	Count      int
}

// ServiceStat popularity of one catalog item
type ServiceStat struct {
	Name    string
	Count   int
	Revenue decimal.Decimal
}

// Aggregate folds completed appointments into revenue metrics.
// Revenue of an appointment is its service price, zero when the service is unknown.
// Weekly covers dates on or after asOf - 7 days, monthly dates on or after the 1st of asOf's month.
func Aggregate(appointments []*Appointment, services []*Service, staff []*Staff, commissionRate decimal.Decimal, asOf time.Time) Report {
	index := NewServiceIndex(services)
	today := DateOnly(asOf)
	weekFrom := today.AddDate(0, 0, -7)
	monthFrom := StartOfMonth(asOf)

	report := Report{
		AsOf:           today,
		TotalRevenue:   decimal.Zero,
		DailyRevenue:   decimal.Zero,
		WeeklyRevenue:  decimal.Zero,
		MonthlyRevenue: decimal.Zero,
		AverageTicket:  decimal.Zero,
		CommissionRate: commissionRate,
		Staff:          make([]StaffPerformance, 0),
		TopServices:    make([]ServiceStat, 0),
	}

	perStaff := make(map[uuid.UUID]*StaffPerformance, len(staff))
	serviceStats := make(map[string]*ServiceStat)
	serviceOrder := make([]string, 0)

	for _, a := range appointments {
		if a.Status != StatusCompleted {
			continue
		}

		revenue := index.PriceOf(a.ServiceID)
		date := DateOnly(a.Date)

		report.CompletedCount++
		report.TotalRevenue = report.TotalRevenue.Add(revenue)
		if date.Equal(today) {
			report.DailyRevenue = report.DailyRevenue.Add(revenue)
		}
		if !date.Before(weekFrom) {
			report.WeeklyRevenue = report.WeeklyRevenue.Add(revenue)
		}
		if !date.Before(monthFrom) {
			report.MonthlyRevenue = report.MonthlyRevenue.Add(revenue)
		}

		p, ok := perStaff[a.StaffID]
		if !ok {
			p = &StaffPerformance{StaffID: a.StaffID, Revenue: decimal.Zero}
			perStaff[a.StaffID] = p
		}
		p.Revenue = p.Revenue.Add(revenue)
		p.Count++

		svc, ok := index[a.ServiceID]
		if !ok {
			continue
		}
		stat, ok := serviceStats[svc.Name]
		if !ok {
			stat = &ServiceStat{Name: svc.Name, Revenue: decimal.Zero}
			serviceStats[svc.Name] = stat
			serviceOrder = append(serviceOrder, svc.Name)
		}
		stat.Count++
		stat.Revenue = stat.Revenue.Add(revenue)
	}

	if report.CompletedCount > 0 {
		report.AverageTicket = report.TotalRevenue.Div(decimal.NewFromInt(int64(report.CompletedCount)))
	}

	// сотрудники в порядке ростера, затем стабильная сортировка по выручке
	for _, s := range staff {
		p, ok := perStaff[s.ID]
		if !ok || p.Count == 0 {
			continue
		}
		p.StaffName = s.Name
		p.Commission = p.Revenue.Mul(commissionRate)
		report.Staff = append(report.Staff, *p)
	}
	sort.SliceStable(report.Staff, func(i, j int) bool {
		return report.Staff[i].Revenue.GreaterThan(report.Staff[j].Revenue)
	})

	for _, name := range serviceOrder {
		report.TopServices = append(report.TopServices, *serviceStats[name])
	}
	sort.SliceStable(report.TopServices, func(i, j int) bool {
		return report.TopServices[i].Count > report.TopServices[j].Count
	})
	if len(report.TopServices) > TopServicesLimit {
		report.TopServices = report.TopServices[:TopServicesLimit]
	}

	return report
}
