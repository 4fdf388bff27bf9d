package commands

import (
	"context"
	"errors"

	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/events"
)

// EscalateCascadeCommandHandler advances a cascade past a closed tender.
//
// The handler is deliberately idempotent: it decides from persisted state
// under the parent's row lock, never from the triggering event. Escalation
// happens only when the parent is still Closed, holds no submitted or
// accepted offer, and the next tier is still Draft. Every other combination
// is a silent no-op, so redelivered events, the reconciliation sweep, and
// concurrent triggers all converge on the same outcome.
type EscalateCascadeCommandHandler struct {
	uowFactory TenderUoWFactory
	bus        *events.Bus
}

// NewEscalateCascadeCommandHandler creates a handler for cascade escalation.
func NewEscalateCascadeCommandHandler(uowFactory TenderUoWFactory, bus *events.Bus) EscalateCascadeCommandHandler {
	return EscalateCascadeCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle opens the next tier of the cascade when the closed tender resolved
// without an awardable offer. Returns nil when there is nothing to do.
func (h *EscalateCascadeCommandHandler) Handle(ctx context.Context, cmd EscalateCascadeCommand) error {
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
	parent, err := tenderRepo.GetForUpdate(ctx, cmd.ClosedTenderID())
	if err != nil {
		return err
	}

	// cancelled or already awarded parents never escalate; a closed parent
	// with a live offer awaits the broker's award decision instead
	if parent.Status() != tender.Closed || parent.HasAwardableOffer() {
		return uow.Commit(ctx)
	}

	child, err := tenderRepo.GetChild(ctx, parent.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// last tier: the cascade ends unresolved
			return uow.Commit(ctx)
		}
		return err
	}

	next, err := tenderRepo.GetForUpdate(ctx, child.ID())
	if err != nil {
		return err
	}

	if next.Status() != tender.Draft {
		return uow.Commit(ctx)
	}

	if err = next.Open(); err != nil {
		return err
	}

	if err = tenderRepo.Update(ctx, next); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return publishEvents(ctx, h.bus, next)
}
