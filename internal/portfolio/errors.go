package portfolio

import (
	"errors"
	"fmt"
)

// ErrWalletNotFound is returned when a referenced wallet id does not exist.
var ErrWalletNotFound = errors.New("wallet not found")

// ValidationError reports a rejected asset composition. The message is
// user-facing and rendered directly by the admin pages.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistError reports a failed write of the portfolio document.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist portfolio document: %v", e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
