package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// HeaderRequestID заголовок с идентификатором запроса
const HeaderRequestID = "X-Request-Id"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestIDMiddleware присваивает каждому запросу идентификатор (или
// переиспользует пришедший в заголовке) и логирует запрос. Идентификатор
// возвращается в ответе, чтобы по нему можно было найти запрос в логах.
func RequestIDMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			logger.Info("%s %s request_id=%s", r.Method, r.URL.Path, requestID)

			next.ServeHTTP(w, r)
		})
	}
}
