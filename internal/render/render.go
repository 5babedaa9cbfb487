// Package render produces the recipient-facing HTML pages using the Liquid
// template language, so newsletter bodies can carry {{ name }} / {{ email }}
// personalization. A body without Liquid tags renders unchanged.
package render

import (
	"fmt"
	"log"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/osteele/liquid"
)

// Renderer holds the parsed page templates. Safe for concurrent use.
type Renderer struct {
	engine   *liquid.Engine
	view     *liquid.Template
	notFound *liquid.Template
}

// New parses the built-in page templates.
func New() (*Renderer, error) {
	engine := liquid.NewEngine()

	view, err := engine.ParseString(viewTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing view template: %w", err)
	}
	notFound, err := engine.ParseString(notFoundTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing not-found template: %w", err)
	}

	return &Renderer{engine: engine, view: view, notFound: notFound}, nil
}

// View renders the newsletter page for one recipient. The campaign body is
// itself rendered as a Liquid template with the recipient's name and email
// bound; a body that fails to parse is shown verbatim.
func (r *Renderer) View(c *domain.Campaign, rec *domain.CampaignRecipient, clicked bool) (string, error) {
	body, err := r.engine.ParseAndRenderString(c.Body, liquid.Bindings{
		"name":  rec.Name,
		"email": rec.Email,
	})
	if err != nil {
		log.Printf("[render.Renderer] body template for campaign %s: %v", c.ID, err)
		body = c.Body
	}

	info := c.Mood.Info()
	return r.view.RenderString(liquid.Bindings{
		"subject":    c.Subject,
		"body":       body,
		"cta":        c.CTAText,
		"clicked":    clicked,
		"clickPath":  rec.Link + "/click",
		"sentOn":     c.Date.Format("January 2, 2006"),
		"icon":       info.Icon,
		"color":      info.Color,
		"border":     info.BorderColor,
		"text":       info.TextColor,
		"ctaColor":   info.CTAColor,
		"recipients": len(c.Recipients),
		"opens":      len(c.Opens),
		"clicks":     len(c.Clicks),
	})
}

// NotFound renders the terminal not-found page. Kind selects the headline:
// "campaign" or "recipient".
func (r *Renderer) NotFound(kind string) (string, error) {
	title := "Campaign Not Found"
	message := "The newsletter you're looking for doesn't exist."
	icon := "❌"
	if kind == "recipient" {
		title = "Recipient Not Found"
		message = "This newsletter link is not valid."
		icon = "👤"
	}
	return r.notFound.RenderString(liquid.Bindings{
		"title":   title,
		"message": message,
		"icon":    icon,
	})
}
