package directory

import "errors"

// Sentinel errors for the directory service layer. Validation failures are
// reported as *domain.ValidationError instead.
var (
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrGroupNotFound     = errors.New("group not found")
)
