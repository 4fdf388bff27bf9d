package commands

import (
	"context"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/core/ports"
	"tendering/internal/pkg/events"
)

// CreateTenderCommandHandler handles the direct single-tender path: one
// tender, explicit carrier list, opened immediately. The tender is created
// as the tier-zero root of a one-tier cascade in Sequential mode, so closing
// it without a winner simply ends the cascade.
type CreateTenderCommandHandler struct {
	uowFactory    TenderUoWFactory
	orderRegistry ports.OrderRegistry
	sequence      ports.NumberSequence
	bus           *events.Bus
	hooks         *Hooks
}

// NewCreateTenderCommandHandler creates a handler for the direct tender path.
func NewCreateTenderCommandHandler(
	uowFactory TenderUoWFactory,
	orderRegistry ports.OrderRegistry,
	sequence ports.NumberSequence,
	bus *events.Bus,
	hooks *Hooks,
) CreateTenderCommandHandler {
	return CreateTenderCommandHandler{
		uowFactory:    uowFactory,
		orderRegistry: orderRegistry,
		sequence:      sequence,
		bus:           bus,
		hooks:         hooks,
	}
}

// Handle processes the direct tender creation command and returns the id of
// the created tender. The pre-create chain may veto or rewrite the request.
func (h *CreateTenderCommandHandler) Handle(ctx context.Context, cmd CreateTenderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	payload := TenderCreatePayload{
		OrderID:       cmd.OrderID(),
		ShipmentID:    cmd.ShipmentID(),
		Carriers:      cmd.Carriers(),
		OfferDeadline: cmd.OfferDeadline(),
	}
	if err := h.hooks.TenderCreate.RunPre(ctx, &payload); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.orderRegistry.Exists(ctx, payload.OrderID); err != nil {
		return kernel.UUID{}, err
	}

	number, err := h.sequence.Next(ctx, "TND")
	if err != nil {
		return kernel.UUID{}, err
	}

	newTender, err := tender.NewTender(
		kernel.NewUUID(),
		number,
		payload.OrderID,
		payload.ShipmentID,
		tender.Sequential,
		0,
		nil,
		payload.OfferDeadline,
		payload.Carriers,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = newTender.Open(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TenderRepository().Add(ctx, newTender); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if err = publishEvents(ctx, h.bus, newTender); err != nil {
		return kernel.UUID{}, err
	}

	h.hooks.TenderCreate.RunPost(ctx, payload)
	return newTender.ID(), nil
}
