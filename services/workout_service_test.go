package services

import (
	"fmt"
	"testing"

	"hexfit/progression"

	"github.com/stretchr/testify/assert"
)

func TestGrantFailuresSuccessLeavesNoTrace(t *testing.T) {
	g := &grantFailures{userID: 7}

	assert.True(t, g.check("hexagon grant", nil))
	assert.True(t, g.check("reward totals", nil))
	assert.Empty(t, g.failed)
}

func TestGrantFailuresRecordsFailedGrantsInOrder(t *testing.T) {
	g := &grantFailures{userID: 7}

	conflict := fmt.Errorf("hexagon profile for user 7: %w", progression.ErrConflict)
	assert.False(t, g.check("hexagon grant", conflict))
	assert.True(t, g.check("reward totals", nil))
	assert.False(t, g.check("streak recompute", assert.AnError))

	assert.Equal(t, []string{"hexagon grant", "streak recompute"}, g.failed)
}

// A committed session must never turn into an error response because a
// follow-up grant lost its optimistic-concurrency race. The collector
// swallows the conflict; the result only flags which grants did not apply.
func TestGrantFailuresAbsorbsConflicts(t *testing.T) {
	g := &grantFailures{userID: 7}

	g.check("hexagon grant", fmt.Errorf("hexagon profile for user 7: %w", progression.ErrConflict))

	result := WorkoutResult{SessionID: 42, IncompleteGrants: g.failed}
	assert.Equal(t, []string{"hexagon grant"}, result.IncompleteGrants)
	assert.Equal(t, uint(42), result.SessionID)
}
