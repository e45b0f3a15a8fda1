package sweep_overdue

import (
	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	sweepOverdue "github.com/m04kA/SMC-SalonScheduler/internal/usecase/sweep_overdue"
)

// SweepResponse итог прогона
type SweepResponse struct {
	AsOf         string `json:"asOf"`
	Checked      int    `json:"checked"`
	Transitioned int    `json:"transitioned"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}

func FromUseCaseResult(res *sweepOverdue.Result) *SweepResponse {
	return &SweepResponse{
		AsOf:         handlers.FormatDate(res.AsOf),
		Checked:      res.Checked,
		Transitioned: res.Transitioned,
		Skipped:      res.Skipped,
		Failed:       res.Failed,
	}
}
