package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/client"
	requestRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/schedulerequest"
	settingsRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/settings"
	staffRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/authprovider"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/notifier"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/notifications"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/txmanager"
)

// infra соединения и репозитории, общие для serve и sweep
type infra struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	db      *sql.DB
	stopCh  chan struct{}

	txManager    *txmanager.Manager
	appointments *appointmentRepo.Repository
	clients      *clientRepo.Repository
	catalog      *catalogRepo.Repository
	staff        *staffRepo.Repository
	requests     *requestRepo.Repository
	settings     *settingsRepo.Repository
}

func setupInfra(withPoolStats bool) (*infra, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// "Сегодня" считается в часовом поясе салона
	if cfg.Scheduler.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Scheduler.Timezone, err)
		}
		time.Local = loc
		log.Info("Salon timezone set to %s", cfg.Scheduler.Timezone)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if withPoolStats && cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, metricsCollector)
	}

	return &infra{
		cfg:          cfg,
		log:          log,
		metrics:      metricsCollector,
		db:           db,
		stopCh:       stopCh,
		txManager:    txmanager.NewTransactionManager(wrappedDB),
		appointments: appointmentRepo.NewRepository(wrappedDB),
		clients:      clientRepo.NewRepository(wrappedDB),
		catalog:      catalogRepo.NewRepository(wrappedDB),
		staff:        staffRepo.NewRepository(wrappedDB),
		requests:     requestRepo.NewRepository(wrappedDB),
		settings:     settingsRepo.NewRepository(wrappedDB),
	}, nil
}

func (i *infra) Close() {
	close(i.stopCh)
	if err := i.db.Close(); err != nil {
		i.log.Error("Failed to close database: %v", err)
	}
	i.log.Close()
}

// tokenVerifier jwt проверяет подпись локально, remote спрашивает провайдера
func tokenVerifier(cfg config.AuthConfig, log *logger.Logger) middleware.TokenVerifier {
	if cfg.Mode == config.AuthModeRemote {
		log.Info("Auth: remote verification via %s", cfg.ProviderURL)
		return authprovider.NewClient(cfg.ProviderURL, cfg.APIKey, time.Duration(cfg.Timeout)*time.Second, log)
	}
	log.Info("Auth: local JWT verification (audience=%s)", cfg.Audience)
	return authprovider.NewJWTVerifier(cfg.JWTSecret, cfg.Issuer, cfg.Audience)
}

// notificationSender канал доставки по настройке provider
func notificationSender(cfg config.NotificationsConfig, log *logger.Logger) notifications.Sender {
	switch cfg.Provider {
	case config.ProviderEmail:
		log.Info("Notifications: email via Resend")
		return notifier.NewResendSender(cfg.Resend.APIKey, cfg.Resend.From, log)
	case config.ProviderSMS:
		log.Info("Notifications: SMS via Twilio")
		return notifier.NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, log)
	default:
		log.Info("Notifications: disabled, messages are only logged")
		return notifier.NewNoopSender(log)
	}
}
