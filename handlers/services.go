// handlers/services.go - Shared service wiring for the handler layer
package handlers

import (
	"errors"

	"hexfit/progression"
	"hexfit/services"

	"github.com/gofiber/fiber/v2"
)

var (
	progressionSvc *services.ProgressionService
	workoutSvc     *services.WorkoutService
	rankSvc        *services.RankService
	notifier       *services.Notifier
)

// InitServices wires the handler layer to its services. Called once from
// main before routes are registered.
func InitServices(prog *services.ProgressionService, workout *services.WorkoutService, rank *services.RankService, n *services.Notifier) {
	progressionSvc = prog
	workoutSvc = workout
	rankSvc = rank
	notifier = n
}

// statusForError maps progression sentinel errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, progression.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, progression.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, progression.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}
