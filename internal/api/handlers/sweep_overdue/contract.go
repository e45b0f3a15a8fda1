package sweep_overdue

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	sweepOverdue "github.com/m04kA/SMC-SalonScheduler/internal/usecase/sweep_overdue"
)

type SweepOverdueUseCase interface {
	Execute(ctx context.Context, viewer *domain.Viewer) (*sweepOverdue.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
