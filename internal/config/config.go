package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Scheduler     SchedulerConfig     `toml:"scheduler"`
	Notifications NotificationsConfig `toml:"notifications"`
	Salon         SalonConfig         `toml:"salon"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig проверка access token'ов провайдера (Supabase: HS256, aud=authenticated).
// mode=jwt проверяет подпись локально, mode=remote спрашивает провайдера.
type AuthConfig struct {
	Mode        string `toml:"mode"`
	JWTSecret   string `toml:"jwt_secret"`
	Issuer      string `toml:"issuer"`
	Audience    string `toml:"audience"`
	ProviderURL string `toml:"provider_url"`
	APIKey      string `toml:"api_key"`
	Timeout     int    `toml:"timeout"` // секунды
}

// SchedulerConfig периодические задачи
type SchedulerConfig struct {
	Enabled       bool   `toml:"enabled"`
	SweepSchedule string `toml:"sweep_schedule"` // cron-выражение, по умолчанию "@every 5m"
	Timezone      string `toml:"timezone"`       // часовой пояс салона для "сегодня"
}

// NotificationsConfig канал доставки уведомлений: noop, email (Resend) или sms (Twilio)
type NotificationsConfig struct {
	Provider string       `toml:"provider"`
	Timeout  int          `toml:"timeout"` // секунды
	Resend   ResendConfig `toml:"resend"`
	Twilio   TwilioConfig `toml:"twilio"`
}

type ResendConfig struct {
	APIKey string `toml:"api_key"`
	From   string `toml:"from"`
}

type TwilioConfig struct {
	AccountSID string `toml:"account_sid"`
	AuthToken  string `toml:"auth_token"`
	From       string `toml:"from"`
}

// SalonConfig начальные данные салона
type SalonConfig struct {
	SeedDefaultServices bool `toml:"seed_default_services"`
}

const (
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"

	ProviderNoop  = "noop"
	ProviderEmail = "email"
	ProviderSMS   = "sms"
)

// Load читает .env (если есть), TOML файл и переменные окружения.
// Переменные окружения перекрывают значения из файла.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		problems = append(problems, "database.host, database.dbname and database.user are required")
	}
	switch c.Auth.Mode {
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			problems = append(problems, "auth.jwt_secret is required (or SALON_JWT_SECRET)")
		}
	case AuthModeRemote:
		if c.Auth.ProviderURL == "" || c.Auth.APIKey == "" {
			problems = append(problems, "auth.provider_url and auth.api_key are required for remote mode")
		}
	default:
		problems = append(problems, fmt.Sprintf("auth.mode %q is unknown", c.Auth.Mode))
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		problems = append(problems, "metrics.path is required when metrics are enabled")
	}
	if c.Scheduler.Enabled && c.Scheduler.SweepSchedule == "" {
		problems = append(problems, "scheduler.sweep_schedule is required when scheduler is enabled")
	}

	switch c.Notifications.Provider {
	case ProviderNoop:
	case ProviderEmail:
		if c.Notifications.Resend.APIKey == "" || c.Notifications.Resend.From == "" {
			problems = append(problems, "notifications.resend.api_key and from are required for email provider")
		}
	case ProviderSMS:
		if c.Notifications.Twilio.AccountSID == "" || c.Notifications.Twilio.AuthToken == "" || c.Notifications.Twilio.From == "" {
			problems = append(problems, "notifications.twilio.account_sid, auth_token and from are required for sms provider")
		}
	default:
		problems = append(problems, fmt.Sprintf("notifications.provider %q is unknown", c.Notifications.Provider))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-scheduler",
		},
		Auth: AuthConfig{
			Mode:     AuthModeJWT,
			Audience: "authenticated",
			Timeout:  5,
		},
		Scheduler: SchedulerConfig{
			Enabled:       true,
			SweepSchedule: "@every 5m",
		},
		Notifications: NotificationsConfig{
			Provider: ProviderNoop,
			Timeout:  10,
		},
		Salon: SalonConfig{
			SeedDefaultServices: true,
		},
	}
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"SALON_DB_HOST":      &cfg.Database.Host,
		"SALON_DB_USER":      &cfg.Database.User,
		"SALON_DB_PASSWORD":  &cfg.Database.Password,
		"SALON_DB_NAME":      &cfg.Database.DBName,
		"SALON_JWT_SECRET":   &cfg.Auth.JWTSecret,
		"SALON_AUTH_API_KEY": &cfg.Auth.APIKey,
		"RESEND_API_KEY":     &cfg.Notifications.Resend.APIKey,
		"TWILIO_ACCOUNT_SID": &cfg.Notifications.Twilio.AccountSID,
		"TWILIO_AUTH_TOKEN":  &cfg.Notifications.Twilio.AuthToken,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}
