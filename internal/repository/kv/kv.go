package kv

import (
	"context"
	"errors"
	"log"

	"github.com/ignite/moodletter/internal/storage"
)

// Persisted collection keys. These names are part of the storage layout and
// must not change without a data migration.
const (
	KeyRecipients = "recipients"
	KeyGroups     = "recipientGroups"
	KeyCampaigns  = "campaigns"
)

// loadList reads the collection under key. An absent key yields an empty
// list. A malformed stored value is logged and treated as empty rather than
// failing the whole request; the next save rewrites the key.
// replaceList rewrites the collection under key in one write. An empty list
// removes the key instead; loadList reads an absent key as empty, so the two
// states are indistinguishable to callers and no stale file lingers.
func replaceList[T any](ctx context.Context, gw storage.Gateway, key string, list []T) error {
	if len(list) == 0 {
		return gw.Delete(ctx, key)
	}
	return gw.Save(ctx, key, list)
}

func loadList[T any](ctx context.Context, gw storage.Gateway, key string) ([]T, error) {
	var list []T
	_, err := gw.Load(ctx, key, &list)
	if err != nil {
		var perr *storage.ParseError
		if errors.As(err, &perr) {
			log.Printf("[kv] falling back to empty %s: %v", key, perr)
			return []T{}, nil
		}
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}
