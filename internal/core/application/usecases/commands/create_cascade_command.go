package commands

import (
	"errors"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/core/domain/services"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/guard"
)

var (
	ErrCreateCascadeCommandIsNotConstructed = errors.New(
		"CreateCascadeCommand must be created via NewCreateCascadeCommand constructor",
	)
	ErrTiersAreRequired = errs.NewValueIsRequiredError("tiers")
)

// CreateCascadeCommand represents a request to start a tiered bidding cascade
// for a shipment order against a broker's carrier network.
//
// Example:
//
//	cmd, err := NewCreateCascadeCommand(orderID, nil, brokerID, tender.Sequential,
//	    []services.TierRequest{{Tier: 1, OfferDeadlineMinutes: 60}})
//	if err != nil {
//	    return fmt.Errorf("invalid cascade request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create cascade: %w", err)
//	}
//	fmt.Printf("cascade rooted at %s with %d tiers", result.RootTenderID, result.TotalTiers)
type CreateCascadeCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	shipmentID *kernel.UUID
	brokerID   kernel.UUID
	mode       tender.Mode
	tiers      []services.TierRequest

	guard guard.ConstructorGuard
}

// NewCreateCascadeCommand creates a command to start a bidding cascade.
// Validates that order and broker ids are valid, the mode is known, and at
// least one tier with a positive bidding window is requested.
func NewCreateCascadeCommand(
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	brokerID kernel.UUID,
	mode tender.Mode,
	tiers []services.TierRequest,
) (CreateCascadeCommand, error) {
	cascadeCommand := CreateCascadeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cascadeCommand.setOrderID(orderID),
		cascadeCommand.setShipmentID(shipmentID),
		cascadeCommand.setBrokerID(brokerID),
		cascadeCommand.setMode(mode),
		cascadeCommand.setTiers(tiers),
	); err != nil {
		return CreateCascadeCommand{}, err
	}

	return cascadeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCascadeCommandIsNotConstructed if validation fails.
func (c CreateCascadeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCascadeCommandIsNotConstructed)
}

// OrderID returns the order being tendered.
func (c CreateCascadeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShipmentID returns the shipment to assign the winner to, or nil.
func (c CreateCascadeCommand) ShipmentID() *kernel.UUID {
	return c.shipmentID
}

// BrokerID returns the broker whose carrier network drives the cascade.
func (c CreateCascadeCommand) BrokerID() kernel.UUID {
	return c.brokerID
}

// Mode returns the cascade activation mode.
func (c CreateCascadeCommand) Mode() tender.Mode {
	return c.mode
}

// Tiers returns the requested network tiers.
func (c CreateCascadeCommand) Tiers() []services.TierRequest {
	return c.tiers
}

func (c *CreateCascadeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateCascadeCommand) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateCascadeCommand) setBrokerID(brokerID kernel.UUID) error {
	if err := brokerID.Validate(); err != nil {
		return err
	}

	c.brokerID = brokerID
	return nil
}

func (c *CreateCascadeCommand) setMode(mode tender.Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *CreateCascadeCommand) setTiers(tiers []services.TierRequest) error {
	if len(tiers) == 0 {
		return ErrTiersAreRequired
	}

	c.tiers = tiers
	return nil
}
