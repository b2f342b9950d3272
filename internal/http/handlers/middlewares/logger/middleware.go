package logger

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"bloglist/internal/http/httputils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const slowRequestThreshold = 100 * time.Millisecond

// statusWriter запоминает код ответа и число записанных байт
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// outcome maps a status code to the log level and message of the access line.
func outcome(status int) (zerolog.Level, string) {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel, "server error"
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel, "client error"
	default:
		return zerolog.InfoLevel, "request completed"
	}
}

// MiddlewareLogging логирует каждый запрос и перехватывает паники обработчиков
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			reqLog := log.With().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Logger()

			reqLog.Debug().Msg("request started")

			defer func() {
				if rec := recover(); rec != nil {
					reqLog.Error().
						Str("panic", fmt.Sprint(rec)).
						Bytes("stack", debug.Stack()).
						Msg("request panic")
					if sw.status == 0 {
						httputils.WriteJSONError(sw, http.StatusInternalServerError, "internal server error")
					}
				}

				elapsed := time.Since(start)
				level, msg := outcome(sw.status)

				ev := reqLog.WithLevel(level).
					Int("status", sw.status).
					Dur("duration", elapsed).
					Int("bytes", sw.bytes)
				if elapsed > slowRequestThreshold {
					ev = ev.Bool("slow", true)
				}
				ev.Msg(msg)
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
