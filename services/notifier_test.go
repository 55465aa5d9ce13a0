package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversToSubscriber(t *testing.T) {
	n := NewNotifier()

	events, cancel := n.Subscribe(7)
	defer cancel()

	n.Publish(7, Event{Type: EventLevelUp, Message: "Level up!"})

	select {
	case event := <-events:
		assert.Equal(t, EventLevelUp, event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestNotifierScopedPerUser(t *testing.T) {
	n := NewNotifier()

	events, cancel := n.Subscribe(7)
	defer cancel()

	n.Publish(8, Event{Type: EventTierUnlocked})

	select {
	case event := <-events:
		t.Fatalf("unexpected event for other user: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotifierCancelClosesChannel(t *testing.T) {
	n := NewNotifier()

	events, cancel := n.Subscribe(7)
	cancel()

	_, open := <-events
	assert.False(t, open)

	// Publishing after cancel must not panic or block.
	n.Publish(7, Event{Type: EventStreakMilestone})

	// Cancel is idempotent.
	cancel()
}

func TestNotifierDropsWhenSubscriberBackedUp(t *testing.T) {
	n := NewNotifier()

	events, cancel := n.Subscribe(7)
	defer cancel()

	// Fill the buffer and then some; Publish must never block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			n.Publish(7, Event{Type: EventTierUnlocked})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The buffered events are still readable.
	require.NotEmpty(t, len(events))
}
