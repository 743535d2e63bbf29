package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired marks a mutation attempted without a signed-in
	// viewer. The backend is never called in that case.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyBody marks a comment submission whose body trims to nothing.
	ErrEmptyBody = errors.New("comment body cannot be empty")

	// ErrNotConfirmed marks a delete invoked without the confirmation gate.
	ErrNotConfirmed = errors.New("delete requires confirmation")

	// ErrReplyDepth marks a reply attempt below the nesting bound.
	ErrReplyDepth = errors.New("reply nesting depth limit reached")
)

// FetchError wraps a failed thread read. Reads fail open, so callers see it
// only through logs.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed write. Surfaced to the caller; local state is
// untouched because no optimistic update was applied.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
