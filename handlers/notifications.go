// handlers/notifications.go - WebSocket push for progression events
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RequireWebSocketUpgrade rejects plain HTTP requests on the socket route.
func RequireWebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// NotificationsSocket streams tier unlocks, level ups and streak milestones
// to the connected client as they happen.
var NotificationsSocket = websocket.New(func(conn *websocket.Conn) {
	userID, ok := socketUserID(conn)
	if !ok {
		_ = conn.WriteJSON(fiber.Map{"error": "Unauthorized"})
		_ = conn.Close()
		return
	}

	events, cancel := notifier.Subscribe(userID)
	defer cancel()

	// Reader goroutine: its only job is to notice the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("notifications: write to user %d failed: %v", userID, err)
				return
			}
		case <-done:
			return
		}
	}
})

// socketUserID extracts the user id stashed by the upgrade middleware.
func socketUserID(conn *websocket.Conn) (uint, bool) {
	switch v := conn.Locals("userId").(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}
