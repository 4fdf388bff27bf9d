package commands

import (
	"context"

	"tendering/internal/pkg/events"
)

// OpenTenderCommandHandler transitions a tender Draft -> Open under its row
// lock, making it accept offer submissions.
type OpenTenderCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewOpenTenderCommandHandler creates a handler for opening tenders.
func NewOpenTenderCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) OpenTenderCommandHandler {
	return OpenTenderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle opens the tender and publishes the TenderOpened event after commit.
func (h *OpenTenderCommandHandler) Handle(ctx context.Context, cmd OpenTenderCommand) error {
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

	if err = aggregate.Open(); err != nil {
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
