package delete_appointment

import (
	"context"

	deleteAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/delete_appointment"
)

type DeleteAppointmentUseCase interface {
	Execute(ctx context.Context, req *deleteAppointment.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
