package queries

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/guard"
)

var ErrGetOpenTendersQueryIsNotConstructed = errors.New(
	"GetOpenTendersQuery must be created via NewGetOpenTendersQuery constructor",
)

// GetOpenTendersQuery retrieves all tenders currently accepting offers.
// Used by the market surface to show carriers where they can bid.
type GetOpenTendersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenTendersQuery creates a query for open tenders.
// This is a parameterless query that fetches every tender in Open status.
func NewGetOpenTendersQuery() GetOpenTendersQuery {
	return GetOpenTendersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenTendersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenTendersQueryIsNotConstructed)
}

// GetOpenTendersQueryResponse represents one open tender with its bidding
// state summary.
type GetOpenTendersQueryResponse struct {
	ID              kernel.UUID
	Number          string
	OrderID         kernel.UUID
	Tier            int
	OfferDeadline   time.Time
	TotalOffers     int
	SubmittedOffers int
}
