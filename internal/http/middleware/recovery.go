package middleware

import (
	"fmt"
	"net/http"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/http/handlers/response"
)

// Recovery converts handler panics into the JSON 500 shape. No fault in a
// request handler is fatal to the process.
func Recovery(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					log.Error(
						r.Context(),
						"Handler panicked.",
						logging.Entry("path", r.URL.Path),
						logging.Entry("panic", recovered),
					)
					response.RenderInternalError(rw, fmt.Sprintf("%v", recovered))
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
