// progression/hexagon.go - Hexagon profile state and XP grants
package progression

import "fmt"

// AxisState is the full state of one axis. XP is the raw source of truth;
// Level and Value are derived and recomputed whenever XP changes.
type AxisState struct {
	XP    int       `json:"xp"`
	Level AxisLevel `json:"level"`
	Value float64   `json:"value"` // 0-10 visual scale
}

// Profile holds the six axis states, keyed by axis. The key set is fixed
// and exhaustive: every axis is always present, no extras.
type Profile map[Axis]AxisState

// NewProfile builds a profile from raw per-axis XP. Missing axes start at 0,
// unknown axes are rejected.
func NewProfile(xp map[Axis]int) (Profile, error) {
	for axis := range xp {
		if !axis.Valid() {
			return nil, fmt.Errorf("%w: unknown axis %q", ErrInvalidInput, axis)
		}
	}
	p := make(Profile, len(Axes))
	for _, axis := range Axes {
		p[axis] = axisStateFromXP(xp[axis])
	}
	return p, nil
}

func axisStateFromXP(xp int) AxisState {
	if xp < 0 {
		xp = 0
	}
	return AxisState{
		XP:    xp,
		Level: AxisLevelFromXP(xp),
		Value: NormalizedValue(xp),
	}
}

// ApplyAxisXP returns a copy of the profile with delta XP added to one axis,
// its level and value recomputed, and every other axis untouched.
func (p Profile) ApplyAxisXP(axis Axis, delta int) (Profile, error) {
	return p.ApplyMultiAxisXP(map[Axis]int{axis: delta})
}

// ApplyMultiAxisXP applies several grants as one logical update. All deltas
// are validated before any axis changes, so the result is all-or-nothing.
func (p Profile) ApplyMultiAxisXP(deltas map[Axis]int) (Profile, error) {
	for axis, delta := range deltas {
		if !axis.Valid() {
			return nil, fmt.Errorf("%w: unknown axis %q", ErrInvalidInput, axis)
		}
		if delta < 0 {
			return nil, fmt.Errorf("%w: negative XP delta %d for axis %s", ErrInvalidInput, delta, axis)
		}
	}

	next := make(Profile, len(Axes))
	for _, axis := range Axes {
		state := p[axis]
		if delta, ok := deltas[axis]; ok {
			state = axisStateFromXP(state.XP + delta)
		}
		next[axis] = state
	}
	return next, nil
}

// OverallLevel is the user's single overall level: the axis level of the
// mean XP across all six axes. Always recomputed, never cached.
func (p Profile) OverallLevel() AxisLevel {
	total := 0
	for _, axis := range Axes {
		total += p[axis].XP
	}
	return AxisLevelFromXP(total / len(Axes))
}

// TotalXP sums the raw XP of all six axes.
func (p Profile) TotalXP() int {
	total := 0
	for _, axis := range Axes {
		total += p[axis].XP
	}
	return total
}
