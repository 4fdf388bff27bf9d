package commands

import (
	"context"
	"time"

	"tendering/internal/pkg/events"
)

// SubmitOfferCommandHandler places a carrier's bid under the tender's row
// lock. The aggregate enforces the failure taxonomy: deadline first, then
// tender status, invitation, and duplicate submission.
type SubmitOfferCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
	hooks      *Hooks
}

// NewSubmitOfferCommandHandler creates a handler for bid submissions.
func NewSubmitOfferCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus, hooks *Hooks) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		hooks:      hooks,
	}
}

// Handle processes the bid. The pre-submit chain may veto or rewrite the bid
// before the critical section; OfferSubmitted is published after commit.
func (h *SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payload := OfferSubmitPayload{
		TenderID:   cmd.TenderID(),
		CarrierID:  cmd.CarrierID(),
		Price:      cmd.Price(),
		ValidUntil: cmd.ValidUntil(),
		Conditions: cmd.Conditions(),
	}
	if err := h.hooks.OfferSubmit.RunPre(ctx, &payload); err != nil {
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
	aggregate, err := tenderRepo.GetForUpdate(ctx, payload.TenderID)
	if err != nil {
		return err
	}

	_, err = aggregate.SubmitOffer(
		payload.CarrierID,
		payload.Price,
		payload.ValidUntil,
		payload.Conditions,
		time.Now().UTC(),
	)
	if err != nil {
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

	h.hooks.OfferSubmit.RunPost(ctx, payload)
	return nil
}
