package http

import (
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/utils"
)

// currentUser returns the identity of the authenticated caller as resolved
// by the auth middleware. The password hash never leaves the server.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user found in request context")
		utils.WriteJSONMessage(w, "Not authorized!", http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
