package client

import (
	"errors"
	"fmt"
)

var (
	// ErrCartUnavailable: no remote cart identity could be established.
	ErrCartUnavailable = errors.New("cart service unavailable")
	// ErrCartNotFound: the session has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrInvalidMutation: locally rejected input such as a missing dish id,
	// a non-positive quantity or an unknown category.
	ErrInvalidMutation = errors.New("invalid cart mutation")
	// ErrAuthRequired: the collaborator demands a signed-in session.
	ErrAuthRequired = errors.New("authentication required")
)

// RemoteRejectedError carries the cart service's non-success answer. The
// local ledger is left untouched when one of these comes back.
type RemoteRejectedError struct {
	Status  int
	Message string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("cart service rejected request: %d %s", e.Status, e.Message)
}
