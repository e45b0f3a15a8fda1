package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/authprovider"
)

const (
	msgMissingToken   = "отсутствует токен авторизации"
	msgInvalidToken   = "недействительный токен авторизации"
	msgResolveFailed  = "не удалось определить пользователя"
	msgMissingSession = "пользователь не авторизован"

	bearerPrefix = "Bearer "
)

// Auth проверяет Bearer токен и кладет учетную запись в контекст
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, authprovider.ErrInvalidToken),
					errors.Is(err, authprovider.ErrMissingToken),
					errors.Is(err, authprovider.ErrInvalidSubject):
					logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
				default:
					logger.Error("%s %s - Token verification failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
		})
	}
}

// Viewer определяет сотрудника и роль по учетной записи из Auth
func Viewer(resolver ViewerResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				logger.Warn("%s %s - Missing identity", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			viewer, err := resolver.ResolveViewer(r.Context(), identity)
			if err != nil {
				logger.Error("%s %s - Failed to resolve viewer: user_id=%s, error=%v",
					r.Method, r.URL.Path, identity.UserID, err)
				handlers.RespondError(w, http.StatusInternalServerError, msgResolveFailed)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), viewer)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
