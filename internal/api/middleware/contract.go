package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// TokenVerifier проверяет access token провайдера
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// ViewerResolver сопоставляет учетную запись с сотрудником и ролью
type ViewerResolver interface {
	ResolveViewer(ctx context.Context, identity domain.Identity) (*domain.Viewer, error)
}

// HTTPMetrics сбор метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
