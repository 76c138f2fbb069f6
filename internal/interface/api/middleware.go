package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"flight-query-service/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with status and latency
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsedMs", time.Since(start).Milliseconds(),
				"requestId", middleware.GetReqID(r.Context()),
				"remoteAddr", r.RemoteAddr,
			)
		})
	}
}

// Recoverer turns a handler panic into a JSON 500
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("Handler panic",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					WriteError(w, http.StatusInternalServerError, ErrorInternal)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
