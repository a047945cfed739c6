package middleware

import (
	"net/http"
	"time"

	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/ctxdata"
	"github.com/brunomguimaraes/fsoverflow-developer-api/internal/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const TraceHeader = "X-Trace-Id"

// responseRecorder remembers the status and body size handed to the client.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestTraceID keeps a caller-supplied UUID so a trace spans services, and
// mints a time-ordered one otherwise.
func requestTraceID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(TraceHeader)); err == nil {
		return id.String()
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

func NewLoggingMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			traceID := requestTraceID(r)

			ctx := logging.ContextWithLogger(ctxdata.WithTraceID(r.Context(), traceID), logger)
			w.Header().Set(TraceHeader, traceID)
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("duration", time.Since(start)),
			}
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(ctx, "request failed", fields...)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(ctx, "request rejected", fields...)
			default:
				logger.Info(ctx, "request completed", fields...)
			}
		})
	}
}
