package main

import (
	"context"

	"github.com/spf13/cobra"

	sweepOverdueUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/sweep_overdue"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark overdue scheduled appointments as no-show once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupInfra(false)
		if err != nil {
			return err
		}
		defer app.Close()

		result, err := sweepOverdueUC.NewUseCase(app.appointments, app.metrics, app.log).Run(context.Background())
		if err != nil {
			return err
		}

		cmd.Printf("checked=%d transitioned=%d skipped=%d failed=%d\n",
			result.Checked, result.Transitioned, result.Skipped, result.Failed)
		return nil
	},
}
