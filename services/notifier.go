// services/notifier.go - In-process event fan-out for progression pushes
package services

import (
	"sync"
)

const (
	EventTierUnlocked    = "TIER_UNLOCKED"
	EventLevelUp         = "LEVEL_UP"
	EventStreakMilestone = "STREAK_MILESTONE"
)

// Event is one push notification for a user.
type Event struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
}

// Notifier fans progression events out to per-user subscribers. Delivery is
// best effort: a subscriber that cannot keep up drops events rather than
// blocking the progression path.
type Notifier struct {
	mu   sync.RWMutex
	subs map[uint]map[chan Event]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint]map[chan Event]struct{})}
}

// Subscribe registers a channel for one user's events. The returned function
// unsubscribes and closes the channel.
func (n *Notifier) Subscribe(userID uint) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[chan Event]struct{})
	}
	n.subs[userID][ch] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if set, ok := n.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(n.subs, userID)
			}
		}
		n.mu.Unlock()
	}
	return ch, cancel
}

// Publish sends an event to every subscriber of the user.
func (n *Notifier) Publish(userID uint, event Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.subs[userID] {
		select {
		case ch <- event:
		default:
			// subscriber is backed up, drop instead of blocking
		}
	}
}
