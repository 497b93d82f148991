package utils

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrRequirementNotFound = fmt.Errorf("review requirement %w", ErrNotFound)
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrReviewerRequired    = fmt.Errorf("%w: either user or agent must be provided", ErrInvalidArgument)
	ErrAmbiguousReviewer   = fmt.Errorf("%w: only one of user or agent may be provided", ErrInvalidArgument)
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrCorruptRecord       = errors.New("corrupt record")
	ErrInvalidJSON         = errors.New("invalid json body")
	ErrValidationFailed    = errors.New("validation failed")
	ErrInternal            = errors.New("internal error")
)

// StorageUnavailable marks err as a failure to acquire a storage session.
func StorageUnavailable(err error) error {
	if err == nil || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
