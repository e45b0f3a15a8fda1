package middleware

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

type contextKey int

const (
	identityKey contextKey = iota
	viewerKey
)

// WithIdentity кладет проверенную учетную запись в контекст
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity учетная запись, положенная Auth
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// WithViewer кладет текущего пользователя с ролью в контекст
func WithViewer(ctx context.Context, viewer *domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// GetViewer пользователь, положенный Viewer
func GetViewer(ctx context.Context) (*domain.Viewer, bool) {
	viewer, ok := ctx.Value(viewerKey).(*domain.Viewer)
	return viewer, ok && viewer != nil
}
