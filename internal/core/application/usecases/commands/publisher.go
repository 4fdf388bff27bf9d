package commands

import (
	"context"
	"errors"

	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/events"
)

// publishEvents announces the recorded domain events of the given tenders
// after their transaction committed, then clears them. Subscriber errors are
// joined and returned so a failed reaction surfaces to the caller; the commit
// itself is not affected.
func publishEvents(ctx context.Context, bus *events.Bus, tenders ...*tender.Tender) error {
	var joined error
	for _, t := range tenders {
		for _, event := range t.DomainEvents() {
			if err := bus.Publish(ctx, event); err != nil {
				joined = errors.Join(joined, err)
			}
		}
		t.ClearDomainEvents()
	}
	return joined
}
