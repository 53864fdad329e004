package api

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"arith-service/internal/metrics"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// unmatchedRoute labels requests that hit no route, keeping raw paths out of
// metric labels.
const unmatchedRoute = "unmatched"

type ctxKey int

const requestIDKey ctxKey = iota

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// observe logs every request and records it in m when m is non-nil.
func observe(log *zap.SugaredLogger, m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := unmatchedRoute
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			if m != nil {
				m.ObserveRequest(route, r.Method, rec.status, elapsed)
			}
			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", elapsed,
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.log.Errorw("panic serving request",
				"panic", rec,
				"stack", string(debug.Stack()),
				"request_id", RequestIDFromContext(r.Context()),
			)
			h.writeError(w, r, errors.Newf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}
