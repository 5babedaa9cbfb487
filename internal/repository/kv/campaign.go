package kv

import (
	"context"

	"github.com/ignite/moodletter/internal/domain"
	"github.com/ignite/moodletter/internal/storage"
)

// CampaignRepository stores the campaign collection.
type CampaignRepository struct {
	gw storage.Gateway
}

// NewCampaignRepository creates a campaign repository over the gateway.
func NewCampaignRepository(gw storage.Gateway) *CampaignRepository {
	return &CampaignRepository{gw: gw}
}

// Campaigns returns the full campaign list, oldest first.
func (r *CampaignRepository) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	return loadList[domain.Campaign](ctx, r.gw, KeyCampaigns)
}

// ReplaceAll rewrites the whole campaign collection in one write.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, list []domain.Campaign) error {
	return replaceList(ctx, r.gw, KeyCampaigns, list)
}
