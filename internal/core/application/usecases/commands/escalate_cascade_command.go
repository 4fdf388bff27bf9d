package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrEscalateCascadeCommandIsNotConstructed = errors.New(
	"EscalateCascadeCommand must be created via NewEscalateCascadeCommand constructor",
)

// EscalateCascadeCommand asks the cascade to advance past a closed tender:
// if the tender resolved without an awardable offer, the next tier opens.
type EscalateCascadeCommand struct { //nolint:recvcheck //using for validation
	closedTenderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEscalateCascadeCommand creates an escalation command keyed by the
// closed tender.
func NewEscalateCascadeCommand(closedTenderID kernel.UUID) (EscalateCascadeCommand, error) {
	if err := closedTenderID.Validate(); err != nil {
		return EscalateCascadeCommand{}, err
	}

	return EscalateCascadeCommand{
		closedTenderID: closedTenderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateCascadeCommand) Validate() error {
	return c.guard.Validate(ErrEscalateCascadeCommandIsNotConstructed)
}

// ClosedTenderID returns the tender whose close triggered the escalation.
func (c EscalateCascadeCommand) ClosedTenderID() kernel.UUID {
	return c.closedTenderID
}
