package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/service/campaign"
)

// campaignSummary is the history-list shape: the campaign plus its derived
// metrics, without the full recipient snapshot.
type campaignSummary struct {
	ID        string           `json:"id"`
	Mood      domain.Mood      `json:"mood"`
	Subject   string           `json:"subject"`
	Date      time.Time        `json:"date"`
	GroupName string           `json:"groupName"`
	Metrics   campaign.Metrics `json:"metrics"`
}

// HandleSendCampaign validates and sends a campaign.
func (h *Handlers) HandleSendCampaign(w http.ResponseWriter, r *http.Request) {
	var input campaign.SendInput
	if err := decodeJSON(r, &input); err != nil {
		respondServiceError(w, err)
		return
	}
	c, err := h.campaigns.Send(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// HandleListCampaigns returns campaign history, newest first, each entry
// carrying its derived metrics.
func (h *Handlers) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.campaigns.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	summaries := make([]campaignSummary, len(list))
	for i := range list {
		summaries[i] = campaignSummary{
			ID:        list[i].ID,
			Mood:      list[i].Mood,
			Subject:   list[i].Subject,
			Date:      list[i].Date,
			GroupName: list[i].GroupName,
			Metrics:   campaign.ComputeMetrics(&list[i]),
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"campaigns": summaries})
}

// HandleGetCampaign returns one full campaign record.
func (h *Handlers) HandleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleCampaignAnalytics returns the analytics-view payload: derived
// metrics, display-clamped bar widths, and the per-recipient engagement
// breakdown.
func (h *Handlers) HandleCampaignAnalytics(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	m := campaign.ComputeMetrics(c)

	type engaged struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	opened := []engaged{}
	clicked := []engaged{}
	for _, rec := range c.Recipients {
		e := engaged{ID: rec.ID, Name: rec.Name, Email: rec.Email}
		if c.HasOpened(rec.ID) {
			opened = append(opened, e)
		}
		if c.HasClicked(rec.ID) {
			clicked = append(clicked, e)
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"campaign": map[string]any{
			"id":        c.ID,
			"mood":      c.Mood,
			"subject":   c.Subject,
			"date":      c.Date,
			"groupName": c.GroupName,
		},
		"metrics": m,
		"display": map[string]float64{
			"openRate":         campaign.ClampRate(m.OpenRate),
			"clickThroughRate": campaign.ClampRate(m.ClickThroughRate),
			"conversionRate":   campaign.ClampRate(m.ConversionRate),
			"engagementScore":  campaign.ClampRate(m.EngagementScore),
		},
		"opened":  opened,
		"clicked": clicked,
	})
}
