package get_report

import (
	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	getReport "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_report"
)

// ReportResponse суммы отдаются строками с двумя знаками после запятой
type ReportResponse struct {
	Scope          string             `json:"scope"` // salon | own
	AsOf           string             `json:"asOf"`
	TotalRevenue   string             `json:"totalRevenue"`
	DailyRevenue   string             `json:"dailyRevenue"`
	WeeklyRevenue  string             `json:"weeklyRevenue"`
	MonthlyRevenue string             `json:"monthlyRevenue"`
	CompletedCount int                `json:"completedCount"`
	AverageTicket  string             `json:"averageTicket"`
	CommissionRate string             `json:"commissionRate"`
	Staff          []StaffPerformance `json:"staff"`
	TopServices    []ServiceStat      `json:"topServices"`
}

type StaffPerformance struct {
	StaffID    string `json:"staffId"`
	StaffName  string `json:"staffName"`
	Revenue    string `json:"revenue"`
	Commission string `json:"commission"`
	Count      int    `json:"count"`
}

type ServiceStat struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Revenue string `json:"revenue"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReport.Response) *ReportResponse {
	r := resp.Report
	out := &ReportResponse{
		Scope:          resp.Scope,
		AsOf:           handlers.FormatDate(r.AsOf),
		TotalRevenue:   r.TotalRevenue.StringFixed(2),
		DailyRevenue:   r.DailyRevenue.StringFixed(2),
		WeeklyRevenue:  r.WeeklyRevenue.StringFixed(2),
		MonthlyRevenue: r.MonthlyRevenue.StringFixed(2),
		CompletedCount: r.CompletedCount,
		AverageTicket:  r.AverageTicket.StringFixed(2),
		CommissionRate: r.CommissionRate.String(),
		Staff:          make([]StaffPerformance, 0, len(r.Staff)),
		TopServices:    make([]ServiceStat, 0, len(r.TopServices)),
	}

	for _, s := range r.Staff {
		out.Staff = append(out.Staff, StaffPerformance{
			StaffID:    s.StaffID.String(),
			StaffName:  s.StaffName,
			Revenue:    s.Revenue.StringFixed(2),
			Commission: s.Commission.StringFixed(2),
			Count:      s.Count,
		})
	}
	for _, s := range r.TopServices {
		out.TopServices = append(out.TopServices, ServiceStat{
			Name:    s.Name,
			Count:   s.Count,
			Revenue: s.Revenue.StringFixed(2),
		})
	}

	return out
}
