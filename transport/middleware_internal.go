package transport

import (
	"net/http"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/utils/errors"
)

// InternalMiddleware guards admin endpoints (product writes, upload
// management, order deletion) with a static API key.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
