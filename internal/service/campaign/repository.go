package campaign

import (
	"context"

	"github.com/ignite/moodletter/internal/domain"
)

// Repository defines the data access contract for campaigns.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Campaigns returns the full campaign list, oldest first. An empty store
	// is an empty slice, never nil.
	Campaigns(ctx context.Context) ([]domain.Campaign, error)

	// ReplaceAll rewrites the whole campaign collection in a single write.
	// Append and engagement-log updates both go through here; there is no
	// partial update.
	ReplaceAll(ctx context.Context, list []domain.Campaign) error
}

// DirectorySource is the read-only view of the address book the sender needs
// to resolve a target selector. Satisfied by *directory.Service.
type DirectorySource interface {
	Recipients(ctx context.Context) ([]domain.Recipient, error)
	Groups(ctx context.Context) ([]domain.RecipientGroup, error)
}
