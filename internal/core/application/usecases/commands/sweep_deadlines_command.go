package commands

import (
	"errors"

	"tendering/internal/pkg/guard"
)

var ErrSweepDeadlinesCommandIsNotConstructed = errors.New(
	"SweepDeadlinesCommand must be created via NewSweepDeadlinesCommand constructor",
)

// SweepDeadlinesCommand triggers one pass of the deadline sweep: every Open
// tender whose offer deadline has passed is closed. Carries no parameters;
// the sweep always works from the current time.
type SweepDeadlinesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepDeadlinesCommand creates a deadline sweep command.
func NewSweepDeadlinesCommand() SweepDeadlinesCommand {
	return SweepDeadlinesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepDeadlinesCommand) Validate() error {
	return c.guard.Validate(ErrSweepDeadlinesCommandIsNotConstructed)
}
