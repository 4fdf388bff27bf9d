package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// WithdrawOfferCommandHandler retracts a carrier's submitted bid under the
// tender's row lock. Only Submitted offers withdraw; the slot does not
// return to Pending, so a withdrawn carrier cannot bid again.
type WithdrawOfferCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewWithdrawOfferCommandHandler creates a handler for bid withdrawals.
func NewWithdrawOfferCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) WithdrawOfferCommandHandler {
	return WithdrawOfferCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle withdraws the bid and publishes OfferWithdrawn after commit.
func (h *WithdrawOfferCommandHandler) Handle(ctx context.Context, cmd WithdrawOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenderRepo := uow.TenderRepository()
	aggregate, err := tenderRepo.GetForUpdate(ctx, cmd.TenderID())
	if err != nil {
		return err
	}

	if _, err = aggregate.WithdrawOffer(cmd.CarrierID()); err != nil {
		return err
	}

	if err = tenderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishEvents(ctx, h.bus, aggregate)
}
