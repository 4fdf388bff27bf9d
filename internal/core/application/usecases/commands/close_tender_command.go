package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrCloseTenderCommandIsNotConstructed = errors.New(
	"CloseTenderCommand must be created via NewCloseTenderCommand constructor",
)

// CloseTenderCommand represents a request to end a tender's bidding window.
type CloseTenderCommand struct { //nolint:recvcheck //using for validation
	tenderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseTenderCommand creates a command to close a tender.
func NewCloseTenderCommand(tenderID kernel.UUID) (CloseTenderCommand, error) {
	if err := tenderID.Validate(); err != nil {
		return CloseTenderCommand{}, err
	}

	return CloseTenderCommand{
		tenderID: tenderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseTenderCommand) Validate() error {
	return c.guard.Validate(ErrCloseTenderCommandIsNotConstructed)
}

// TenderID returns the tender to close.
func (c CloseTenderCommand) TenderID() kernel.UUID {
	return c.tenderID
}
