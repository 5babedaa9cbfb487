package render

import (
	"testing"
	"time"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:      "c1",
		Mood:    domain.MoodUrgent,
		Subject: "Last chance",
		Body:    "Hi {{ name }}, this is your final reminder.",
		CTAText: "Act Now",
		Date:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Recipients: []domain.CampaignRecipient{
			{ID: "r1", Name: "Jane", Email: "jane@x.com", Link: "/view/c1/r1"},
		},
		Opens:  []string{"r1"},
		Clicks: []string{},
	}
}

func TestViewPersonalizesBody(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	c := testCampaign()
	html, err := r.View(c, &c.Recipients[0], false)
	require.NoError(t, err)

	assert.Contains(t, html, "Hi Jane, this is your final reminder.")
	assert.Contains(t, html, "Last chance")
	assert.Contains(t, html, `action="/view/c1/r1/click"`)
	assert.Contains(t, html, "Act Now")
	assert.Contains(t, html, domain.MoodUrgent.Info().Icon)
	assert.NotContains(t, html, "{{ name }}")
}

func TestViewClickedHidesCTA(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	c := testCampaign()
	html, err := r.View(c, &c.Recipients[0], true)
	require.NoError(t, err)

	assert.Contains(t, html, "Thank you for your interest")
	assert.NotContains(t, html, "<form")
}

func TestViewMalformedBodyFallsBackVerbatim(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	c := testCampaign()
	c.Body = "Broken {% if %} template"
	html, err := r.View(c, &c.Recipients[0], false)
	require.NoError(t, err)
	assert.Contains(t, html, "Broken {% if %} template")
}

func TestNotFound(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	html, err := r.NotFound("campaign")
	require.NoError(t, err)
	assert.Contains(t, html, "Campaign Not Found")

	html, err = r.NotFound("recipient")
	require.NoError(t, err)
	assert.Contains(t, html, "Recipient Not Found")
	assert.Contains(t, html, "not valid")
}
