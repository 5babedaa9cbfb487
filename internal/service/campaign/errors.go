package campaign

import "errors"

// Sentinel errors for the campaign service layer. Validation failures are
// reported as *domain.ValidationError instead.
var (
	// ErrNotFound covers both an unknown campaign id and a recipient id that
	// is not part of the campaign's snapshot. Tracking links carrying either
	// resolve to a terminal not-found state with no mutation.
	ErrNotFound = errors.New("campaign or recipient not found")
)
