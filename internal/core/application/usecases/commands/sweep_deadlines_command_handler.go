package commands

import (
	"context"
	"errors"
	"time"

	"tendering/internal/pkg/errs"
)

// SweepDeadlinesCommandHandler closes every Open tender whose offer deadline
// has passed. Candidates are listed first, then each tender is closed through
// the regular close handler in its own row-locked transaction, so the sweep
// and a concurrent manual close converge: whichever closes first wins and the
// loser is a silent skip.
type SweepDeadlinesCommandHandler struct {
	uowFactory   TenderUoWFactory
	closeHandler CloseTenderCommandHandler
}

// NewSweepDeadlinesCommandHandler creates a handler for the deadline sweep.
func NewSweepDeadlinesCommandHandler(
	uowFactory TenderUoWFactory,
	closeHandler CloseTenderCommandHandler,
) SweepDeadlinesCommandHandler {
	return SweepDeadlinesCommandHandler{
		uowFactory:   uowFactory,
		closeHandler: closeHandler,
	}
}

// Handle runs one sweep pass and returns the number of tenders closed.
// A failure on one tender does not stop the sweep; failures are joined and
// returned after every candidate was visited.
func (h *SweepDeadlinesCommandHandler) Handle(ctx context.Context, cmd SweepDeadlinesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	overdue, err := uow.TenderRepository().GetOpenPastDeadline(ctx, time.Now().UTC())
	if err != nil {
		_ = uow.Rollback(ctx)
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	closed := 0
	var joined error
	for _, tenderID := range overdue {
		closeCmd, cmdErr := NewCloseTenderCommand(tenderID)
		if cmdErr != nil {
			joined = errors.Join(joined, cmdErr)
			continue
		}

		if closeErr := h.closeHandler.Handle(ctx, closeCmd); closeErr != nil {
			// someone closed or cancelled it between listing and locking
			if errors.Is(closeErr, errs.ErrInvalidState) {
				continue
			}
			joined = errors.Join(joined, closeErr)
			continue
		}
		closed++
	}

	return closed, joined
}
