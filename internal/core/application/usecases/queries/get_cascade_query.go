// Package queries contains read-only operations for the tendering system.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return plain response structs, bypassing
// the domain aggregates.
package queries

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrGetCascadeQueryIsNotConstructed = errors.New(
	"GetCascadeQuery must be created via NewGetCascadeQuery constructor",
)

// GetCascadeQuery retrieves the full tender chain of a cascade, located by
// any tender belonging to it.
//
// Example:
//
//	query, err := NewGetCascadeQuery(tenderID)
//	if err != nil {
//	    return err
//	}
//
//	cascade, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cascade: %w", err)
//	}
//	for _, t := range cascade {
//	    fmt.Printf("tier %d: %s (%s)\n", t.Tier, t.Number, t.Status)
//	}
type GetCascadeQuery struct {
	tenderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCascadeQuery creates a query for the cascade containing the tender.
func NewGetCascadeQuery(tenderID kernel.UUID) (GetCascadeQuery, error) {
	if err := tenderID.Validate(); err != nil {
		return GetCascadeQuery{}, err
	}

	return GetCascadeQuery{
		tenderID: tenderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCascadeQuery) Validate() error {
	return q.guard.Validate(ErrGetCascadeQueryIsNotConstructed)
}

// TenderID returns the tender used to locate the cascade.
func (q GetCascadeQuery) TenderID() kernel.UUID {
	return q.tenderID
}

// GetCascadeQueryResponse represents one tender of the cascade, ordered by
// tier. Offer counters summarize the bidding state without loading the
// aggregate.
type GetCascadeQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Status          string
	Mode            string
	Tier            int
	ParentTenderID  *kernel.UUID
	OfferDeadline   time.Time
	TotalOffers     int
	SubmittedOffers int
}
