package episodes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrConflict        = errors.New("episode status conflict")
	ErrInvalidInput    = errors.New("invalid input")
)

// NotFoundError represents an error when an episode is not found
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("episode with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrEpisodeNotFound
}

// ConflictError is returned when a status transition finds the episode in an
// unexpected state, usually because another worker holds the run
type ConflictError struct {
	ID     uint
	Wanted string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("episode %d is not in an expected state for transition to %s", e.ID, e.Wanted)
}

func (e ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEpisodeNotFound)
}
