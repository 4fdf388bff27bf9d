package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// RejectOfferCommandHandler rejects a single submitted offer. The owning
// tender is located by the offer id, then re-read under its row lock before
// the transition runs.
type RejectOfferCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewRejectOfferCommandHandler creates a handler for single-offer rejects.
func NewRejectOfferCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) RejectOfferCommandHandler {
	return RejectOfferCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle rejects the offer and publishes OfferRejected after commit.
func (h *RejectOfferCommandHandler) Handle(ctx context.Context, cmd RejectOfferCommand) error {
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
	owner, err := tenderRepo.GetByOffer(ctx, cmd.OfferID())
	if err != nil {
		return err
	}

	aggregate, err := tenderRepo.GetForUpdate(ctx, owner.ID())
	if err != nil {
		return err
	}

	if _, err = aggregate.RejectOffer(cmd.OfferID()); err != nil {
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
