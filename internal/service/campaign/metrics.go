package campaign

import (
	"math"

	"github.com/ignite/moodletter/internal/domain"
)

// clickWeight makes a click count three opens in the engagement score.
const clickWeight = 3

// Metrics are the derived engagement rates for one campaign, each rounded to
// one decimal place. Values are not clamped; ClampRate exists for display.
type Metrics struct {
	TotalRecipients  int     `json:"totalRecipients"`
	Opens            int     `json:"opens"`
	Clicks           int     `json:"clicks"`
	OpenRate         float64 `json:"openRate"`
	ClickThroughRate float64 `json:"clickThroughRate"`
	ConversionRate   float64 `json:"conversionRate"`
	EngagementScore  float64 `json:"engagementScore"`
}

// ComputeMetrics derives the engagement metrics from a campaign's recipient
// count and engagement logs. Pure: no storage access, no mutation.
func ComputeMetrics(c *domain.Campaign) Metrics {
	n := len(c.Recipients)
	o := len(c.Opens)
	cl := len(c.Clicks)

	m := Metrics{TotalRecipients: n, Opens: o, Clicks: cl}
	if n > 0 {
		m.OpenRate = round1(float64(o) / float64(n) * 100)
		m.ClickThroughRate = round1(float64(cl) / float64(n) * 100)
		// Score is normalized against every recipient clicking.
		m.EngagementScore = round1(float64(o+clickWeight*cl) / float64(clickWeight*n) * 100)
	}
	if o > 0 {
		// Denominator is opens, not recipients: the share of opens that
		// turned into clicks.
		m.ConversionRate = round1(float64(cl) / float64(o) * 100)
	}
	return m
}

// ClampRate caps a rate at 100 for rendering. The underlying metric keeps
// its raw value; exceeding 100 is only possible through a data-integrity
// violation.
func ClampRate(rate float64) float64 {
	return math.Min(rate, 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
