package http

import (
	"net/http"

	"github.com/MKhiriev/go-phonebook/internal/utils"
	"github.com/MKhiriev/go-phonebook/models"
)

// root is a liveness page for humans poking the API base URL.
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.RootResponse{
		Message: "Phonebook API is running!",
		Version: h.version,
		Status:  "OK",
	}, http.StatusOK)
}

// health reports service readiness. The database connection is established
// and migrated before the listener starts, so a serving process implies a
// connected store.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:   "OK",
		Database: "connected",
	}, http.StatusOK)
}
