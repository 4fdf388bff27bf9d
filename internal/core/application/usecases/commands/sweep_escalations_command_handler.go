package commands

import (
	"context"
	"errors"
)

// SweepEscalationsCommandHandler re-runs the escalation decision for every
// Closed tender that still has a Draft child. The escalation handler is
// idempotent, so candidates that were already handled, resolved, or cancelled
// are silent no-ops.
type SweepEscalationsCommandHandler struct {
	uowFactory      TenderUoWFactory
	escalateHandler EscalateCascadeCommandHandler
}

// NewSweepEscalationsCommandHandler creates a handler for the escalation sweep.
func NewSweepEscalationsCommandHandler(
	uowFactory TenderUoWFactory,
	escalateHandler EscalateCascadeCommandHandler,
) SweepEscalationsCommandHandler {
	return SweepEscalationsCommandHandler{
		uowFactory:      uowFactory,
		escalateHandler: escalateHandler,
	}
}

// Handle runs one reconciliation pass and returns the number of candidates
// visited. Failures are joined and returned after every candidate was tried.
func (h *SweepEscalationsCommandHandler) Handle(ctx context.Context, cmd SweepEscalationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	candidates, err := uow.TenderRepository().GetClosedWithDraftChild(ctx)
	if err != nil {
		_ = uow.Rollback(ctx)
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	var joined error
	for _, tenderID := range candidates {
		escalateCmd, cmdErr := NewEscalateCascadeCommand(tenderID)
		if cmdErr != nil {
			joined = errors.Join(joined, cmdErr)
			continue
		}

		if escErr := h.escalateHandler.Handle(ctx, escalateCmd); escErr != nil {
			joined = errors.Join(joined, escErr)
		}
	}

	return len(candidates), joined
}
