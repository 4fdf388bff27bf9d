package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents a request to accept a single submitted offer
// without awarding the whole tender.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept an offer.
func NewAcceptOfferCommand(offerID kernel.UUID) (AcceptOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return AcceptOfferCommand{}, err
	}

	return AcceptOfferCommand{
		offerID: offerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OfferID returns the offer to accept.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}
