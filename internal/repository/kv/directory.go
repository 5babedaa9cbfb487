package kv

import (
	"context"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/storage"
)

// DirectoryRepository stores the recipient and group collections.
type DirectoryRepository struct {
	gw storage.Gateway
}

// NewDirectoryRepository creates a directory repository over the gateway.
func NewDirectoryRepository(gw storage.Gateway) *DirectoryRepository {
	return &DirectoryRepository{gw: gw}
}

// Recipients returns the full recipient list.
func (r *DirectoryRepository) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	return loadList[domain.Recipient](ctx, r.gw, KeyRecipients)
}

// ReplaceRecipients rewrites the whole recipient collection.
func (r *DirectoryRepository) ReplaceRecipients(ctx context.Context, list []domain.Recipient) error {
	return replaceList(ctx, r.gw, KeyRecipients, list)
}

// Groups returns the full group list.
func (r *DirectoryRepository) Groups(ctx context.Context) ([]domain.RecipientGroup, error) {
	return loadList[domain.RecipientGroup](ctx, r.gw, KeyGroups)
}

// ReplaceGroups rewrites the whole group collection.
func (r *DirectoryRepository) ReplaceGroups(ctx context.Context, list []domain.RecipientGroup) error {
	return replaceList(ctx, r.gw, KeyGroups, list)
}
