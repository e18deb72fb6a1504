package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
)

const msgForbidden = "Forbidden: invalid admin code"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет административный код в заголовке X-Admin-Code
// или в query-параметре code
// Пустой настроенный код запрещает все административные запросы
func AdminAuth(adminCode string, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				code = r.Header.Get("X-Admin-Code")
			}

			if adminCode == "" || code != adminCode {
				log.Warn("AdminAuth: rejected %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
