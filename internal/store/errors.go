package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Sentinel errors for store operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique index rejected the write. The
	// credential store keeps unique indexes on username, email and
	// phone number.
	ErrDuplicate = errors.New("duplicate record")
)

// wrapWriteError inspects a MongoDB error and wraps it with the appropriate
// sentinel if it's a known write error type. Returns the original error
// otherwise.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", ErrDuplicate, err)
	}
	return err
}
