// Package storage provides the key-value persistence gateway. Values are
// stored as JSON strings under named keys; the rest of the application never
// sees the encoding.
package storage

import (
	"context"
	"fmt"
)

// Gateway is the persistence contract. Implementations must be safe for
// concurrent use. Save replaces the whole value under key in one write, so
// the transaction granularity is always the full collection.
type Gateway interface {
	// Save serializes value to JSON and writes it under key, replacing any
	// previous value atomically.
	Save(ctx context.Context, key string, value any) error

	// Load reads the value under key into target. It returns false with a nil
	// error when the key is absent, leaving target untouched so the caller's
	// default survives. A stored value that is not valid JSON for target
	// returns a *ParseError.
	Load(ctx context.Context, key string, target any) (bool, error)

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// ParseError reports a stored value that could not be decoded. Callers are
// expected to log it and fall back to their default value.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("storage: malformed value under %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
