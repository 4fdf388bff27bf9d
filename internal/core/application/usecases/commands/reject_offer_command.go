package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrRejectOfferCommandIsNotConstructed = errors.New(
	"RejectOfferCommand must be created via NewRejectOfferCommand constructor",
)

// RejectOfferCommand represents a request to reject a single submitted offer
// without awarding the whole tender.
type RejectOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectOfferCommand creates a command to reject an offer.
func NewRejectOfferCommand(offerID kernel.UUID) (RejectOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return RejectOfferCommand{}, err
	}

	return RejectOfferCommand{
		offerID: offerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOfferCommand) Validate() error {
	return c.guard.Validate(ErrRejectOfferCommandIsNotConstructed)
}

// OfferID returns the offer to reject.
func (c RejectOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}
