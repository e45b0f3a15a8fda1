package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	clientsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/clients"
	createAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_calendar"
	getMeHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_me"
	getReportHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_report"
	scheduleRequestsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/schedule_requests"
	servicesHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/services"
	settingsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/settings"
	staffHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/staff"
	submitRequestHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/submit_schedule_request"
	sweepOverdueHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/sweep_overdue"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	catalogService "github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-SalonScheduler/internal/service/clients"
	notificationsService "github.com/m04kA/SMC-SalonScheduler/internal/service/notifications"
	requestsService "github.com/m04kA/SMC-SalonScheduler/internal/service/schedulerequests"
	settingsService "github.com/m04kA/SMC-SalonScheduler/internal/service/settings"
	staffService "github.com/m04kA/SMC-SalonScheduler/internal/service/staff"
	createAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
	deleteAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/delete_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_calendar"
	getReportUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/get_report"
	submitRequestUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/submit_schedule_request"
	sweepOverdueUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/sweep_overdue"
	updateAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the no-show sweep scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	app, err := setupInfra(true)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg, log := app.cfg, app.log
	log.Info("Starting SMC-SalonScheduler...")

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(app.settings, log)
	staffSvc := staffService.NewService(app.staff, app.txManager, log)
	clientsSvc := clientsService.NewService(app.clients, log)
	catalogSvc := catalogService.NewService(app.catalog, app.txManager, log)
	notificationsSvc := notificationsService.NewService(
		app.staff,
		app.clients,
		app.catalog,
		settingsSvc,
		notificationSender(cfg.Notifications, log),
		app.metrics,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	requestsSvc := requestsService.NewService(app.requests, app.staff, notificationsSvc, log)

	// Начальный каталог услуг
	if cfg.Salon.SeedDefaultServices {
		seeded, err := catalogSvc.EnsureDefaults(context.Background())
		if err != nil {
			log.Error("Failed to seed default services: %v", err)
		} else if seeded > 0 {
			log.Info("Seeded %d default services", seeded)
		}
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		app.appointments,
		app.clients,
		app.catalog,
		app.staff,
		app.requests,
		settingsSvc,
		notificationsSvc,
		app.txManager,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		app.appointments,
		app.clients,
		app.catalog,
		app.staff,
		app.requests,
		settingsSvc,
		notificationsSvc,
		app.txManager,
		log,
	)
	deleteAppointmentUseCase := deleteAppointmentUC.NewUseCase(app.appointments, notificationsSvc, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(app.appointments, app.staff, app.requests, settingsSvc, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		app.appointments,
		app.staff,
		app.clients,
		app.catalog,
		app.requests,
		settingsSvc,
		log,
	)
	getReportUseCase := getReportUC.NewUseCase(app.appointments, app.catalog, app.staff, settingsSvc, log)
	submitRequestUseCase := submitRequestUC.NewUseCase(app.requests, notificationsSvc, app.txManager, log)
	sweepUseCase := sweepOverdueUC.NewUseCase(app.appointments, app.metrics, log)

	// Инициализируем handlers
	getMe := getMeHandler.NewHandler(staffSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(deleteAppointmentUseCase, log)
	sweepOverdue := sweepOverdueHandler.NewHandler(sweepUseCase, log)
	clients := clientsHandler.NewHandler(clientsSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	staff := staffHandler.NewHandler(staffSvc, log)
	scheduleRequests := scheduleRequestsHandler.NewHandler(requestsSvc, log)
	submitRequest := submitRequestHandler.NewHandler(submitRequestUseCase, log)
	getReport := getReportHandler.NewHandler(getReportUseCase, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(app.metrics))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := app.db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// ============================================================
	// API (Bearer токен провайдера, роль определяется по сотруднику)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(tokenVerifier(cfg.Auth, log), log))
	api.Use(middleware.Viewer(staffSvc, log))

	api.HandleFunc("/me", getMe.Handle).Methods(http.MethodGet)

	// --- Календарь и записи ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/sweep", sweepOverdue.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", clients.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", clients.Delete).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	api.HandleFunc("/services", services.List).Methods(http.MethodGet)
	api.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", services.Get).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", services.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", services.Delete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	api.HandleFunc("/staff", staff.List).Methods(http.MethodGet)
	api.HandleFunc("/staff", staff.Create).Methods(http.MethodPost)
	api.HandleFunc("/staff/{staffId}", staff.Get).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}", staff.Update).Methods(http.MethodPatch)
	api.HandleFunc("/staff/{staffId}", staff.Delete).Methods(http.MethodDelete)

	// --- Заявки на выходной ---
	api.HandleFunc("/schedule-requests", scheduleRequests.List).Methods(http.MethodGet)
	api.HandleFunc("/schedule-requests", submitRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule-requests/{requestId}/approve", scheduleRequests.Approve).Methods(http.MethodPost)
	api.HandleFunc("/schedule-requests/{requestId}/reject", scheduleRequests.Reject).Methods(http.MethodPost)

	// --- Отчеты и настройки ---
	api.HandleFunc("/reports", getReport.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", settings.GetBusiness).Methods(http.MethodGet)
	api.HandleFunc("/settings", settings.UpdateBusiness).Methods(http.MethodPut)
	api.HandleFunc("/preferences", settings.GetPreferences).Methods(http.MethodGet)
	api.HandleFunc("/preferences", settings.UpdatePreferences).Methods(http.MethodPut)

	// Периодический перевод просроченных записей в no-show
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var scheduler *cron.Cron
	if cfg.Scheduler.Enabled {
		if _, err := sweepUseCase.Run(ctx); err != nil {
			log.Error("Startup sweep failed: %v", err)
		}

		scheduler = cron.New(cron.WithLocation(time.Local))
		if _, err := scheduler.AddFunc(cfg.Scheduler.SweepSchedule, func() {
			if _, err := sweepUseCase.Run(ctx); err != nil {
				log.Error("Scheduled sweep failed: %v", err)
			}
		}); err != nil {
			return fmt.Errorf("invalid sweep schedule %q: %w", cfg.Scheduler.SweepSchedule, err)
		}
		scheduler.Start()
		log.Info("No-show sweep scheduled: %s", cfg.Scheduler.SweepSchedule)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
		log.Info("Sweep scheduler stopped")
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	notificationsSvc.Wait()
	log.Info("Pending notifications delivered")

	log.Info("Server stopped gracefully")
	return nil
}
