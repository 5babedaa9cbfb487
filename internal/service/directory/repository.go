package directory

import (
	"context"

	"github.com/ignite/moodletter/internal/domain"
)

// Repository defines the data access contract for the address book.
// Implementations must be safe for concurrent use. Replace methods rewrite
// the whole collection; there are no partial updates.
type Repository interface {
	// Recipients returns all recipients. An empty address book is an empty
	// slice, never nil.
	Recipients(ctx context.Context) ([]domain.Recipient, error)

	// ReplaceRecipients rewrites the whole recipient collection.
	ReplaceRecipients(ctx context.Context, list []domain.Recipient) error

	// Groups returns all recipient groups.
	Groups(ctx context.Context) ([]domain.RecipientGroup, error)

	// ReplaceGroups rewrites the whole group collection.
	ReplaceGroups(ctx context.Context, list []domain.RecipientGroup) error
}
