package handlers

import (
	"errors"
	"net/http"

	"github.com/vendormax/apiserver/internal/services"
	"github.com/vendormax/apiserver/internal/store"
	"github.com/vendormax/apiserver/types"
)

// RequirePermission builds middleware that allows the request through only
// when the authenticated user holds the flag for action. It must run after
// RequireAuth. There is no super-user bypass: a user with no flags set can
// read but never mutate.
func RequirePermission(userService *services.UserService, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := userIDFromContext(r.Context())
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := userService.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				writeError(w, http.StatusInternalServerError, "Failed to load user")
				return
			}

			if !user.Permissions.Allows(action) {
				writeError(w, http.StatusForbidden, permissionDeniedMessage(action))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func permissionDeniedMessage(action string) string {
	switch action {
	case types.ActionAdd:
		return "You do not have permission to add records"
	case types.ActionEdit:
		return "You do not have permission to edit records"
	case types.ActionDelete:
		return "You do not have permission to delete records"
	default:
		return "Forbidden"
	}
}
