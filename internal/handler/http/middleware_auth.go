package http

import (
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to the
// current user via [service.OwnershipGuard.CurrentUser] and stores the user
// in the request context under [utils.UserCtxKey]. The request logger is
// tagged with the user id from then on.
//
// A missing or malformed header, as well as any token failure, is answered
// with 401 and a "WWW-Authenticate: Bearer" challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, service.ErrInvalidCredential)
			return
		}

		ctx := r.Context()
		user, err := h.services.OwnershipGuard.CurrentUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = logger.WithUserID(utils.WithUser(ctx, user), user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the user stored by auth. Without one it answers 401
// and reports false.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidCredential)
	}
	return user, ok
}
