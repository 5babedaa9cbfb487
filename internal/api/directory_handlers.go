package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type recipientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type groupRequest struct {
	Name       string   `json:"name"`
	Recipients []string `json:"recipients"`
}

// HandleListRecipients returns the whole address book.
func (h *Handlers) HandleListRecipients(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.directory.Recipients(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"recipients": recipients})
}

// HandleAddRecipient creates a recipient.
func (h *Handlers) HandleAddRecipient(w http.ResponseWriter, r *http.Request) {
	var req recipientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	recipient, err := h.directory.AddRecipient(r.Context(), req.Name, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, recipient)
}

// HandleUpdateRecipient updates a recipient's contact details.
func (h *Handlers) HandleUpdateRecipient(w http.ResponseWriter, r *http.Request) {
	var req recipientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	recipient, err := h.directory.UpdateRecipient(r.Context(), chi.URLParam(r, "id"), req.Name, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recipient)
}

// HandleRemoveRecipient deletes a recipient and cascades into group
// membership sets.
func (h *Handlers) HandleRemoveRecipient(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.RemoveRecipient(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListGroups returns all recipient groups.
func (h *Handlers) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.directory.Groups(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// HandleCreateGroup creates a group.
func (h *Handlers) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	group, err := h.directory.CreateGroup(r.Context(), req.Name, req.Recipients)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, group)
}

// HandleUpdateGroup renames a group and/or replaces its membership set.
func (h *Handlers) HandleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	group, err := h.directory.UpdateGroup(r.Context(), chi.URLParam(r, "id"), req.Name, req.Recipients)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, group)
}

// HandleRemoveGroup deletes a group, leaving recipients untouched.
func (h *Handlers) HandleRemoveGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.RemoveGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
