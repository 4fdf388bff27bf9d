package commands

import (
	"context"

	"tendering/internal/core/ports"
	"tendering/internal/pkg/events"
)

// AwardTenderCommandHandler finalizes a closed tender. Winner acceptance,
// rival rejection, the tender's Awarded transition and the shipment carrier
// assignment all happen inside one transaction under the row lock, so a
// collaborator failure rolls the whole award back and no partial award state
// is ever observable.
type AwardTenderCommandHandler struct {
	uowFactory      TenderUoWFactory
	shipmentService ports.ShipmentService
	bus             *events.Bus
	hooks           *Hooks
}

// NewAwardTenderCommandHandler creates a handler for tender awards.
func NewAwardTenderCommandHandler(
	uowFactory TenderUoWFactory,
	shipmentService ports.ShipmentService,
	bus *events.Bus,
	hooks *Hooks,
) AwardTenderCommandHandler {
	return AwardTenderCommandHandler{
		uowFactory:      uowFactory,
		shipmentService: shipmentService,
		bus:             bus,
		hooks:           hooks,
	}
}

// Handle awards the tender to the offer. The pre-award chain may veto the
// decision. If the tender is bound to a shipment, the winning carrier is
// assigned before commit. Events are published after commit.
func (h *AwardTenderCommandHandler) Handle(ctx context.Context, cmd AwardTenderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payload := TenderAwardPayload{
		TenderID: cmd.TenderID(),
		OfferID:  cmd.OfferID(),
	}
	if err := h.hooks.TenderAward.RunPre(ctx, &payload); err != nil {
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

	winner, err := aggregate.Award(payload.OfferID)
	if err != nil {
		return err
	}

	if err = tenderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if shipmentID := aggregate.ShipmentID(); shipmentID != nil {
		if err = h.shipmentService.SetCarrier(ctx, *shipmentID, winner.CarrierID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = publishEvents(ctx, h.bus, aggregate); err != nil {
		return err
	}

	h.hooks.TenderAward.RunPost(ctx, payload)
	return nil
}
