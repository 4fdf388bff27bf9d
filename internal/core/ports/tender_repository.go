// Package ports defines repository and collaborator interfaces for the
// tendering domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
)

// TenderRepository defines the persistence contract for tender aggregates.
// Provides methods for storing, retrieving, and querying tenders with their
// complete state including all offer slots.
type TenderRepository interface {
	// Add persists a new tender aggregate to storage.
	// The tender must be valid and not already exist in the repository.
	Add(ctx context.Context, tender *tender.Tender) error

	// Update persists changes to an existing tender aggregate.
	// The tender must exist in the repository and be valid.
	Update(ctx context.Context, tender *tender.Tender) error

	// Get retrieves a tender aggregate by its unique identifier.
	// Returns the complete tender with all offers.
	Get(ctx context.Context, id kernel.UUID) (*tender.Tender, error)

	// GetForUpdate retrieves a tender like Get but takes the row lock,
	// serializing every mutating handler touching the same tender.
	// Must be called inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*tender.Tender, error)

	// GetByOffer retrieves the tender owning the given offer.
	GetByOffer(ctx context.Context, offerID kernel.UUID) (*tender.Tender, error)

	// GetChild retrieves the tender whose parent is the given tender,
	// the next tier of the same cascade. Returns ObjectNotFoundError when
	// the tender is the last tier.
	GetChild(ctx context.Context, parentID kernel.UUID) (*tender.Tender, error)

	// GetOpenPastDeadline retrieves the ids of Open tenders whose offer
	// deadline has passed. The sweep closes them one by one under their
	// own row lock.
	GetOpenPastDeadline(ctx context.Context, now time.Time) ([]kernel.UUID, error)

	// GetClosedWithDraftChild retrieves the ids of Closed tenders that
	// still have a Draft child. The escalation sweep re-checks each one
	// under its row lock before opening the child.
	GetClosedWithDraftChild(ctx context.Context) ([]kernel.UUID, error)
}
