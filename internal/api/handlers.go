// Package api exposes the management HTTP API: address book CRUD, campaign
// sending, and per-campaign analytics. The recipient-facing tracking surface
// lives in internal/tracking and is mounted beside these routes.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/service/campaign"
	"github.com/ignite/moodletter/internal/service/directory"
)

// Handlers holds the service dependencies for the management API.
type Handlers struct {
	directory *directory.Service
	campaigns *campaign.Service
}

// NewHandlers creates the API handler set.
func NewHandlers(dir *directory.Service, camp *campaign.Service) *Handlers {
	return &Handlers{directory: dir, campaigns: camp}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleListMoods returns the closed mood set with presentation attributes,
// in display order.
func (h *Handlers) HandleListMoods(w http.ResponseWriter, r *http.Request) {
	type moodEntry struct {
		Key string `json:"key"`
		domain.MoodInfo
	}
	var out []moodEntry
	for _, m := range domain.Moods() {
		out = append(out, moodEntry{Key: string(m), MoodInfo: m.Info()})
	}
	respondJSON(w, http.StatusOK, map[string]any{"moods": out})
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service-layer errors onto HTTP statuses:
// validation failures are 400s, unresolved ids are 404s, the rest are 500s.
func respondServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, directory.ErrRecipientNotFound),
		errors.Is(err, directory.ErrGroupNotFound),
		errors.Is(err, campaign.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return domain.Validationf("invalid request body: %v", err)
	}
	return nil
}
