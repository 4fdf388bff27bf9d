package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// CloseTenderCommandHandler transitions a tender Open -> Closed under its row
// lock. Closing twice fails with InvalidState; the first close is the only
// one that publishes TenderClosed, so cascade escalation fires exactly once
// per close even when the command is retried.
type CloseTenderCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewCloseTenderCommandHandler creates a handler for closing tenders.
func NewCloseTenderCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) CloseTenderCommandHandler {
	return CloseTenderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle closes the tender and publishes TenderClosed after commit. The
// escalation subscriber reacts to that event in its own transaction; its
// error, if any, is returned to the caller while the close itself stays
// committed.
func (h *CloseTenderCommandHandler) Handle(ctx context.Context, cmd CloseTenderCommand) error {
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

	if err = aggregate.Close(); err != nil {
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
