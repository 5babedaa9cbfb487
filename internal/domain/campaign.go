package domain

import "time"

// AllRecipientsGroupName is the group label recorded on campaigns sent to the
// entire address book.
const AllRecipientsGroupName = "All Recipients"

// CampaignRecipient is a snapshot of a recipient taken at send time, plus the
// unique tracking link generated for them. Later edits to the address book do
// not touch these entries.
type CampaignRecipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Link  string `json:"link"`
}

// Campaign is a sent newsletter. Core fields are immutable after send; only
// the Opens and Clicks engagement logs grow, and each holds a recipient id at
// most once.
type Campaign struct {
	ID         string              `json:"id"`
	Mood       Mood                `json:"mood"`
	Subject    string              `json:"subject"`
	Body       string              `json:"body"`
	CTAText    string              `json:"ctaText"`
	Date       time.Time           `json:"date"`
	GroupName  string              `json:"groupName"`
	Recipients []CampaignRecipient `json:"recipients"`
	Opens      []string            `json:"opens"`
	Clicks     []string            `json:"clicks"`
}

// Recipient returns the snapshot entry for the given recipient id, or nil.
func (c *Campaign) Recipient(recipientID string) *CampaignRecipient {
	for i := range c.Recipients {
		if c.Recipients[i].ID == recipientID {
			return &c.Recipients[i]
		}
	}
	return nil
}

// HasOpened reports whether the recipient id is in the opens log.
func (c *Campaign) HasOpened(recipientID string) bool {
	return containsID(c.Opens, recipientID)
}

// HasClicked reports whether the recipient id is in the clicks log.
func (c *Campaign) HasClicked(recipientID string) bool {
	return containsID(c.Clicks, recipientID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
