// progression/achievements.go - Progressive achievement tier evaluation
//
// A progressive achievement owns an ordered list of tiers. Progress is
// cumulative and never resets: the tracked value only moves forward, and a
// tier, once unlocked, stays unlocked.
package progression

import "fmt"

// Tier is one escalating step of a progressive achievement.
type Tier struct {
	Number      int    `json:"tier"`
	Name        string `json:"name"`
	Level       string `json:"level"` // BEGINNER / INTERMEDIATE / ADVANCED / ELITE
	Target      int    `json:"target"`
	XPReward    int    `json:"xp_reward"`
	CoinsReward int    `json:"coins_reward"`
	Color       string `json:"color"`
}

// TierResult describes what a single progress update unlocked.
type TierResult struct {
	PreviousValue int    `json:"previous_value"`
	NewValue      int    `json:"new_value"`
	PreviousTier  int    `json:"previous_tier"`
	NewTier       int    `json:"new_tier"`
	Unlocked      []Tier `json:"unlocked"`
	XPEarned      int    `json:"xp_earned"`
	CoinsEarned   int    `json:"coins_earned"`
}

// EvaluateTiers applies a non-negative delta to the cumulative value and
// unlocks, in ascending order, every tier whose target the new value meets.
// Tiers never unlock out of order: the scan stops at the first unmet target.
// A zero delta unlocks nothing.
func EvaluateTiers(tiers []Tier, currentValue, currentTier, delta int) (TierResult, error) {
	if delta < 0 {
		return TierResult{}, fmt.Errorf("%w: negative achievement delta %d", ErrInvalidInput, delta)
	}
	if err := ValidateTiers(tiers); err != nil {
		return TierResult{}, err
	}

	result := TierResult{
		PreviousValue: currentValue,
		NewValue:      currentValue + delta,
		PreviousTier:  currentTier,
		NewTier:       currentTier,
	}

	for _, tier := range tiers {
		if tier.Number <= currentTier {
			continue // already unlocked
		}
		if result.NewValue < tier.Target {
			break // tiers are ordered, everything beyond is unmet too
		}
		result.NewTier = tier.Number
		result.Unlocked = append(result.Unlocked, tier)
		result.XPEarned += tier.XPReward
		result.CoinsEarned += tier.CoinsReward
	}

	return result, nil
}

// EvaluateAbsolute expresses a sync from an externally computed total as a
// forward-only delta. A value at or below the current one is a no-op.
func EvaluateAbsolute(tiers []Tier, currentValue, currentTier, newValue int) (TierResult, error) {
	delta := newValue - currentValue
	if delta < 0 {
		delta = 0
	}
	return EvaluateTiers(tiers, currentValue, currentTier, delta)
}

// ValidateTiers checks the ordering invariants of a tier list: 1-based
// consecutive tier numbers and strictly increasing targets.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: achievement has no tiers", ErrConfiguration)
	}
	if tiers[0].Number != 1 {
		return fmt.Errorf("%w: tiers must start at 1", ErrConfiguration)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Number != tiers[i-1].Number+1 {
			return fmt.Errorf("%w: tier numbers must be consecutive at %d", ErrConfiguration, tiers[i].Number)
		}
		if tiers[i].Target <= tiers[i-1].Target {
			return fmt.Errorf("%w: tier targets must be strictly increasing at tier %d", ErrConfiguration, tiers[i].Number)
		}
	}
	return nil
}
