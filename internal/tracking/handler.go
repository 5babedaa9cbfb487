// Package tracking serves the recipient-facing surface: the newsletter view
// page reached through a tracking link, the call-to-action click endpoint,
// and the 1x1 open pixel for email clients that load images.
package tracking

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/moodletter/internal/render"
	"github.com/ignite/moodletter/internal/service/campaign"
)

// 1x1 transparent GIF
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00,
	0x80, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x2c,
	0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02,
	0x02, 0x44, 0x01, 0x00, 0x3b,
}

type Handler struct {
	svc      *campaign.Service
	renderer *render.Renderer
}

func NewHandler(svc *campaign.Service, renderer *render.Renderer) *Handler {
	return &Handler{svc: svc, renderer: renderer}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/view/{campaignID}/{recipientID}", h.HandleView)
	r.Post("/view/{campaignID}/{recipientID}/click", h.HandleClick)
	r.Get("/track/open/{campaignID}/{recipientID}", h.HandlePixel)
	return r
}

// HandleView marks the open (idempotently) and renders the newsletter. An
// unknown campaign or recipient renders the not-found page with no mutation.
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	recipientID := chi.URLParam(r, "recipientID")

	c, err := h.svc.MarkOpen(r.Context(), campaignID, recipientID)
	if err != nil {
		h.serveNotFound(w, r, campaignID, recipientID, err)
		return
	}

	rec := c.Recipient(recipientID)
	html, err := h.renderer.View(c, rec, c.HasClicked(recipientID))
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	log.Printf("OPEN campaign=%s recipient=%s", campaignID, recipientID)
	serveHTML(w, http.StatusOK, html)
}

// HandleClick marks the click (recording the open first if missing) and
// re-renders the page in its thank-you state. No-op once already clicked.
func (h *Handler) HandleClick(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	recipientID := chi.URLParam(r, "recipientID")

	c, err := h.svc.MarkClick(r.Context(), campaignID, recipientID)
	if err != nil {
		h.serveNotFound(w, r, campaignID, recipientID, err)
		return
	}

	rec := c.Recipient(recipientID)
	html, err := h.renderer.View(c, rec, true)
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	log.Printf("CLICK campaign=%s recipient=%s", campaignID, recipientID)
	serveHTML(w, http.StatusOK, html)
}

// HandlePixel marks the open and always serves the pixel, valid link or not,
// so a broken image never shows up in an email client.
func (h *Handler) HandlePixel(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	recipientID := chi.URLParam(r, "recipientID")

	if _, err := h.svc.MarkOpen(r.Context(), campaignID, recipientID); err == nil {
		log.Printf("OPEN campaign=%s recipient=%s via=pixel", campaignID, recipientID)
	}
	h.servePixel(w)
}

func (h *Handler) serveNotFound(w http.ResponseWriter, r *http.Request, campaignID, recipientID string, err error) {
	if !errors.Is(err, campaign.ErrNotFound) {
		log.Printf("[tracking.Handler] campaign=%s recipient=%s: %v", campaignID, recipientID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	kind := "campaign"
	if _, getErr := h.svc.Get(r.Context(), campaignID); getErr == nil {
		kind = "recipient"
	}
	html, renderErr := h.renderer.NotFound(kind)
	if renderErr != nil {
		http.NotFound(w, r)
		return
	}
	serveHTML(w, http.StatusNotFound, html)
}

func (h *Handler) servePixel(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(pixelGIF)
}

func serveHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(html))
}
