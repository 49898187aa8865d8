package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hendrawans/marketplace/application/auth"
	"github.com/hendrawans/marketplace/constant"
	utilsContext "github.com/hendrawans/marketplace/utils/context"
	"github.com/hendrawans/marketplace/utils/errors"
)

// APIKeyMiddleware gates an endpoint group behind the shared x-api-key
// secret. A mismatch is rejected before any handler logic runs.
func APIKeyMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("x-api-key") != apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionMiddleware attaches the session user id to the request context when
// a valid bearer token is supplied. It never rejects: per-user sessions are a
// separate mechanism from the API-key gate and are not enforced here.
func SessionMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token := strings.TrimPrefix(header, "Bearer ")
				if userID, err := authApp.ValidateToken(r.Context(), token); err == nil {
					r = r.WithContext(utilsContext.WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
