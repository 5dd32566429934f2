package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Recover превращает панику в обработчике в ответ 500
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					logger.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
