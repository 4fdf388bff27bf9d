package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// AcceptOfferCommandHandler accepts a single submitted offer. The owning
// tender is located by the offer id, then re-read under its row lock before
// the transition runs.
type AcceptOfferCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
	hooks      *Hooks
}

// NewAcceptOfferCommandHandler creates a handler for single-offer accepts.
func NewAcceptOfferCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus, hooks *Hooks) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		hooks:      hooks,
	}
}

// Handle accepts the offer and publishes OfferAccepted after commit.
// The pre-accept chain may veto the operation.
func (h *AcceptOfferCommandHandler) Handle(ctx context.Context, cmd AcceptOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payload := OfferAcceptPayload{OfferID: cmd.OfferID()}
	if err := h.hooks.OfferAccept.RunPre(ctx, &payload); err != nil {
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
	owner, err := tenderRepo.GetByOffer(ctx, payload.OfferID)
	if err != nil {
		return err
	}

	aggregate, err := tenderRepo.GetForUpdate(ctx, owner.ID())
	if err != nil {
		return err
	}

	if _, err = aggregate.AcceptOffer(payload.OfferID); err != nil {
		return err
	}

	if err = tenderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = publishEvents(ctx, h.bus, aggregate); err != nil {
		return err
	}

	h.hooks.OfferAccept.RunPost(ctx, payload)
	return nil
}
