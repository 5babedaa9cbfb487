package domain

// Recipient is a single contact in the address book.
type Recipient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecipientGroup is a named membership set over recipient ids. Groups
// reference recipients by id and never copy them; deleting a recipient
// removes its id from every group.
type RecipientGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Recipients []string `json:"recipients"`
}

// Contains reports whether the group holds the given recipient id.
func (g *RecipientGroup) Contains(recipientID string) bool {
	for _, id := range g.Recipients {
		if id == recipientID {
			return true
		}
	}
	return false
}
