package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/authprovider"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVerifier struct {
	identity *domain.Identity
	err      error
	token    string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*domain.Identity, error) {
	f.token = token
	return f.identity, f.err
}

type fakeResolver struct {
	viewer *domain.Viewer
	err    error
}

func (f *fakeResolver) ResolveViewer(_ context.Context, identity domain.Identity) (*domain.Viewer, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.viewer.Identity = identity
	return f.viewer, nil
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, path: path, status: status})
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
		wantToken  string
	}{
		{
			name:       "missing header",
			header:     "",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			verifier:   &fakeVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad",
			verifier:   &fakeVerifier{err: authprovider.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantToken:  "bad",
		},
		{
			name:       "provider unavailable",
			header:     "Bearer tok",
			verifier:   &fakeVerifier{err: errors.New("dial tcp: refused")},
			wantStatus: http.StatusInternalServerError,
			wantToken:  "tok",
		},
		{
			name:       "valid token",
			header:     "bearer tok",
			verifier:   &fakeVerifier{identity: &domain.Identity{UserID: userID, Email: "ana@salon.com"}},
			wantStatus: http.StatusOK,
			wantToken:  "tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = GetIdentity(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(tt.verifier, nopLogger{})(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantToken, tt.verifier.token)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, got.UserID)
			}
		})
	}
}

func TestViewer(t *testing.T) {
	identity := domain.Identity{UserID: uuid.New(), Email: "ana@salon.com"}

	t.Run("resolves viewer", func(t *testing.T) {
		resolver := &fakeResolver{viewer: &domain.Viewer{Role: domain.RoleReceptionist}}
		var got *domain.Viewer
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = GetViewer(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithIdentity(req.Context(), identity))
		rec := httptest.NewRecorder()

		Viewer(resolver, nopLogger{})(next).ServeHTTP(rec, req)

		require.NotNil(t, got)
		assert.Equal(t, domain.RoleReceptionist, got.Role)
		assert.Equal(t, identity.UserID, got.Identity.UserID)
	})

	t.Run("no identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Viewer(&fakeResolver{}, nopLogger{})(http.NotFoundHandler()).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("resolver fails", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithIdentity(req.Context(), identity))
		rec := httptest.NewRecorder()

		Viewer(&fakeResolver{err: errors.New("db down")}, nopLogger{})(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/appointments/"+uuid.NewString(), nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodDelete, path: "/appointments/{id}", status: http.StatusNoContent}, m.requests[0])
}
