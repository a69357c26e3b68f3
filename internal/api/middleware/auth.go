package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/boatsandjoy/BNJ-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет админский токен в заголовке запроса
// Применяется к роутам генерации доступности и управления промокодами
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "missing admin token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
