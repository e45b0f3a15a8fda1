package submit_schedule_request

import (
	"context"

	submitRequest "github.com/m04kA/SMC-SalonScheduler/internal/usecase/submit_schedule_request"
)

type SubmitScheduleRequestUseCase interface {
	Execute(ctx context.Context, req *submitRequest.Request) (*submitRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
