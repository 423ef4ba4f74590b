package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
	"github.com/auditx/auditx/internal/service/logger"
	"github.com/auditx/auditx/pkg/apperror"
)

type contextKey string

const callerKey contextKey = "caller"

// callerFrom extracts the authenticated caller attached by the auth
// middleware. The zero Caller means the request never passed auth.
func callerFrom(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(callerKey).(domain.Caller)
	return caller
}

// authMiddleware validates the bearer token and attaches the resolved
// caller identity to the request context. Handlers behind it never see
// raw credentials.
func authMiddleware(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, apperror.NewUnauthorized("missing or malformed authorization header"))
				return
			}

			claims, err := tokens.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, apperror.NewUnauthorized("invalid or expired token"))
				return
			}

			caller := domain.Caller{UserID: claims.UserID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey, caller)))
		})
	}
}

// adminOnly gates a handler to the superadmin role. It assumes
// authMiddleware already ran.
func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !callerFrom(r.Context()).IsAdmin() {
			writeError(w, domain.ErrForbidden)
			return
		}
		next(w, r)
	}
}

func loggingMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info(r.Context(), "http request", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"remote_addr": r.RemoteAddr,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func recoveryMiddleware(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error(r.Context(), "panic recovered", nil, map[string]interface{}{
						"panic": err,
						"path":  r.URL.Path,
					})
					writeError(w, apperror.ErrInternalServer)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
