package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrAwardTenderCommandIsNotConstructed = errors.New(
	"AwardTenderCommand must be created via NewAwardTenderCommand constructor",
)

// AwardTenderCommand represents the broker's decision to give the shipment
// to one submitted offer of a closed tender.
type AwardTenderCommand struct { //nolint:recvcheck //using for validation
	tenderID kernel.UUID
	offerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAwardTenderCommand creates a command to award a tender to an offer.
func NewAwardTenderCommand(tenderID, offerID kernel.UUID) (AwardTenderCommand, error) {
	if err := errors.Join(tenderID.Validate(), offerID.Validate()); err != nil {
		return AwardTenderCommand{}, err
	}

	return AwardTenderCommand{
		tenderID: tenderID,
		offerID:  offerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AwardTenderCommand) Validate() error {
	return c.guard.Validate(ErrAwardTenderCommandIsNotConstructed)
}

// TenderID returns the tender being awarded.
func (c AwardTenderCommand) TenderID() kernel.UUID {
	return c.tenderID
}

// OfferID returns the winning offer.
func (c AwardTenderCommand) OfferID() kernel.UUID {
	return c.offerID
}
