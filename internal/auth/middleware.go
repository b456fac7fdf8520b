// internal/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adspark/adspark-backend/internal/model"
)

type contextKey string

const adminIDKey contextKey = "admin_id"

// AdminLookup is the slice of the admin repository the gate needs.
type AdminLookup interface {
	GetByID(id int) (*model.Admin, error)
}

// AdminID returns the authenticated admin's ID stashed by RequireAdmin.
func AdminID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey).(int)
	return id, ok
}

// RequireAdmin rejects requests without a valid bearer token (401) or whose
// admin is missing or inactive (403). On success the admin ID is placed in
// the request context.
func RequireAdmin(secret []byte, admins AdminLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				deny(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				deny(w, http.StatusUnauthorized, "invalid token")
				return
			}

			admin, err := admins.GetByID(claims.AdminID)
			if err != nil {
				deny(w, http.StatusInternalServerError, "failed to resolve admin")
				return
			}
			if admin == nil || !admin.IsActive {
				deny(w, http.StatusForbidden, "admin privileges required")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, admin.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
