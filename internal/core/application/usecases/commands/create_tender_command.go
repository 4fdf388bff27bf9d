package commands

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/guard"
)

var (
	ErrCreateTenderCommandIsNotConstructed = errors.New(
		"CreateTenderCommand must be created via NewCreateTenderCommand constructor",
	)
	ErrCarriersAreRequired = errs.NewValueIsRequiredError("carriers")
)

// CreateTenderCommand represents a request to create a single stand-alone
// tender with an explicit carrier list, bypassing the broker network and
// tier resolution. The tender forms a one-tier cascade of its own.
type CreateTenderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	shipmentID    *kernel.UUID
	carriers      []kernel.UUID
	offerDeadline time.Time

	guard guard.ConstructorGuard
}

// NewCreateTenderCommand creates a command for the direct tender path.
// Validates that the order id is valid, at least one carrier is invited,
// and the offer deadline is set.
func NewCreateTenderCommand(
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	carriers []kernel.UUID,
	offerDeadline time.Time,
) (CreateTenderCommand, error) {
	tenderCommand := CreateTenderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tenderCommand.setOrderID(orderID),
		tenderCommand.setShipmentID(shipmentID),
		tenderCommand.setCarriers(carriers),
		tenderCommand.setOfferDeadline(offerDeadline),
	); err != nil {
		return CreateTenderCommand{}, err
	}

	return tenderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTenderCommandIsNotConstructed if validation fails.
func (c CreateTenderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTenderCommandIsNotConstructed)
}

// OrderID returns the order being tendered.
func (c CreateTenderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentID returns the shipment to assign the winner to, or nil.
func (c CreateTenderCommand) ShipmentID() *kernel.UUID {
	return c.shipmentID
}

// Carriers returns the explicitly invited carriers.
func (c CreateTenderCommand) Carriers() []kernel.UUID {
	return c.carriers
}

// OfferDeadline returns the submission cut-off.
func (c CreateTenderCommand) OfferDeadline() time.Time {
	return c.offerDeadline
}

func (c *CreateTenderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateTenderCommand) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateTenderCommand) setCarriers(carriers []kernel.UUID) error {
	if len(carriers) == 0 {
		return ErrCarriersAreRequired
	}

	c.carriers = carriers
	return nil
}

func (c *CreateTenderCommand) setOfferDeadline(offerDeadline time.Time) error {
	if offerDeadline.IsZero() {
		return errs.NewValueIsRequiredError("offerDeadline")
	}

	c.offerDeadline = offerDeadline
	return nil
}
