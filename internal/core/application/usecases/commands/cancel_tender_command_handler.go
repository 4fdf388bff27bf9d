package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// CancelTenderCommandHandler cancels a tender from any non-terminal status
// under its row lock. No TenderClosed event is published, so the cascade
// never escalates past a cancelled tier.
type CancelTenderCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewCancelTenderCommandHandler creates a handler for cancelling tenders.
func NewCancelTenderCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) CancelTenderCommandHandler {
	return CancelTenderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle cancels the tender and publishes TenderCancelled after commit.
func (h *CancelTenderCommandHandler) Handle(ctx context.Context, cmd CancelTenderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
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
