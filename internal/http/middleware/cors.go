package middleware

import (
	"net/http"
)

// CORS выставляет заголовки для браузерных клиентов и отвечает
// на preflight-запросы. Поверхность сервиса — один POST-эндпойнт,
// поэтому набор методов и заголовков фиксирован.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "apikey, content-type")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
