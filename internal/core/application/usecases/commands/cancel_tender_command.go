package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrCancelTenderCommandIsNotConstructed = errors.New(
	"CancelTenderCommand must be created via NewCancelTenderCommand constructor",
)

// CancelTenderCommand represents a request to withdraw a tender from the
// market. A cancelled tender never escalates its cascade.
type CancelTenderCommand struct { //nolint:recvcheck //using for validation
	tenderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelTenderCommand creates a command to cancel a tender.
func NewCancelTenderCommand(tenderID kernel.UUID) (CancelTenderCommand, error) {
	if err := tenderID.Validate(); err != nil {
		return CancelTenderCommand{}, err
	}

	return CancelTenderCommand{
		tenderID: tenderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTenderCommand) Validate() error {
	return c.guard.Validate(ErrCancelTenderCommandIsNotConstructed)
}

// TenderID returns the tender to cancel.
func (c CancelTenderCommand) TenderID() kernel.UUID {
	return c.tenderID
}
