package commands

import (
	"errors"

	"tendering/internal/pkg/guard"
)

var ErrSweepEscalationsCommandIsNotConstructed = errors.New(
	"SweepEscalationsCommand must be created via NewSweepEscalationsCommand constructor",
)

// SweepEscalationsCommand triggers one reconciliation pass over persisted
// state: every Closed tender that still has a Draft child is re-checked for
// escalation. Recovers cascades whose close-time escalation was lost to a
// crash or a failed subscriber.
type SweepEscalationsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepEscalationsCommand creates an escalation sweep command.
func NewSweepEscalationsCommand() SweepEscalationsCommand {
	return SweepEscalationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepEscalationsCommand) Validate() error {
	return c.guard.Validate(ErrSweepEscalationsCommandIsNotConstructed)
}
