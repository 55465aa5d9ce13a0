// progression/errors.go
package progression

import "errors"

var (
	// ErrInvalidInput covers negative deltas, unknown axes and unknown
	// achievement keys. Nothing is mutated when it is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a referenced user or achievement definition does
	// not exist. Profiles and progress rows are lazily created instead.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned after bounded retries on a version mismatch
	// during a read-modify-write cycle. Callers should retry the whole
	// operation, not reapply a stale delta.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrConfiguration means a static table (levels, milestones, tiers)
	// violates its ordering invariants. Raised at load time, never per request.
	ErrConfiguration = errors.New("invalid configuration")
)
