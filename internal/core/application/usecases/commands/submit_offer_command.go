package commands

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/guard"
)

var ErrSubmitOfferCommandIsNotConstructed = errors.New(
	"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
)

// SubmitOfferCommand represents a carrier placing a bid on an open tender.
//
// Example:
//
//	price, _ := kernel.NewMoney(125000, "EUR")
//	cmd, err := NewSubmitOfferCommand(tenderID, carrierID, price,
//	    time.Now().Add(48*time.Hour), []string{"no weekend delivery"})
//	if err != nil {
//	    return fmt.Errorf("invalid bid: %w", err)
//	}
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	tenderID   kernel.UUID
	carrierID  kernel.UUID
	price      kernel.Money
	validUntil time.Time
	conditions []string

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command for a bid submission.
// Validates ids, the price and the bid validity bound.
func NewSubmitOfferCommand(
	tenderID kernel.UUID,
	carrierID kernel.UUID,
	price kernel.Money,
	validUntil time.Time,
	conditions []string,
) (SubmitOfferCommand, error) {
	offerCommand := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerCommand.setTenderID(tenderID),
		offerCommand.setCarrierID(carrierID),
		offerCommand.setPrice(price),
		offerCommand.setValidUntil(validUntil),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	offerCommand.conditions = conditions
	return offerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// TenderID returns the tender being bid on.
func (c SubmitOfferCommand) TenderID() kernel.UUID {
	return c.tenderID
}

// CarrierID returns the bidding carrier.
func (c SubmitOfferCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Price returns the bid amount.
func (c SubmitOfferCommand) Price() kernel.Money {
	return c.price
}

// ValidUntil returns how long the bid stands.
func (c SubmitOfferCommand) ValidUntil() time.Time {
	return c.validUntil
}

// Conditions returns the optional carrier-supplied conditions.
func (c SubmitOfferCommand) Conditions() []string {
	return c.conditions
}

func (c *SubmitOfferCommand) setTenderID(tenderID kernel.UUID) error {
	if err := tenderID.Validate(); err != nil {
		return err
	}

	c.tenderID = tenderID
	return nil
}

func (c *SubmitOfferCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SubmitOfferCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *SubmitOfferCommand) setValidUntil(validUntil time.Time) error {
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}

	c.validUntil = validUntil
	return nil
}
