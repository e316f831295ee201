package middleware

import (
	"net/http"

	"github.com/wigac/wigac-backend/pkg/ctxutil"
)

// RequireAdmin rejects callers without the ADMIN role. It must run after
// Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
