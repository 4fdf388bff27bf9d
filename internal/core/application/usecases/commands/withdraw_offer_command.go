package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrWithdrawOfferCommandIsNotConstructed = errors.New(
	"WithdrawOfferCommand must be created via NewWithdrawOfferCommand constructor",
)

// WithdrawOfferCommand represents a carrier retracting its submitted bid.
type WithdrawOfferCommand struct { //nolint:recvcheck //using for validation
	tenderID  kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawOfferCommand creates a command to withdraw a carrier's bid.
func NewWithdrawOfferCommand(tenderID, carrierID kernel.UUID) (WithdrawOfferCommand, error) {
	if err := errors.Join(tenderID.Validate(), carrierID.Validate()); err != nil {
		return WithdrawOfferCommand{}, err
	}

	return WithdrawOfferCommand{
		tenderID:  tenderID,
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOfferCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOfferCommandIsNotConstructed)
}

// TenderID returns the tender the bid was placed on.
func (c WithdrawOfferCommand) TenderID() kernel.UUID {
	return c.tenderID
}

// CarrierID returns the withdrawing carrier.
func (c WithdrawOfferCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
