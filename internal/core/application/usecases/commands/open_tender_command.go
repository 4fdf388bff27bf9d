package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrOpenTenderCommandIsNotConstructed = errors.New(
	"OpenTenderCommand must be created via NewOpenTenderCommand constructor",
)

// OpenTenderCommand represents a request to open a Draft tender for bidding.
type OpenTenderCommand struct { //nolint:recvcheck //using for validation
	tenderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenTenderCommand creates a command to open a tender.
func NewOpenTenderCommand(tenderID kernel.UUID) (OpenTenderCommand, error) {
	if err := tenderID.Validate(); err != nil {
		return OpenTenderCommand{}, err
	}

	return OpenTenderCommand{
		tenderID: tenderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenTenderCommand) Validate() error {
	return c.guard.Validate(ErrOpenTenderCommandIsNotConstructed)
}

// TenderID returns the tender to open.
func (c OpenTenderCommand) TenderID() kernel.UUID {
	return c.tenderID
}
