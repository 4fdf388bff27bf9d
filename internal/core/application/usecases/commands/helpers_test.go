package commands_test

import (
	"testing"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"

	"github.com/stretchr/testify/require"
)

// newDraftTender builds a tier-zero Draft tender with cleared creation events.
func newDraftTender(t *testing.T, deadline time.Time, carriers ...kernel.UUID) *tender.Tender {
	t.Helper()
	aggregate, err := tender.NewTender(
		kernel.NewUUID(), "TND-000001", kernel.NewUUID(), nil,
		tender.Sequential, 0, nil, deadline, carriers,
	)
	require.NoError(t, err)
	aggregate.ClearDomainEvents()
	return aggregate
}

// newOpenTender builds an Open tender with cleared events.
func newOpenTender(t *testing.T, deadline time.Time, carriers ...kernel.UUID) *tender.Tender {
	t.Helper()
	aggregate := newDraftTender(t, deadline, carriers...)
	require.NoError(t, aggregate.Open())
	aggregate.ClearDomainEvents()
	return aggregate
}

// newClosedTender builds a Closed tender with cleared events.
func newClosedTender(t *testing.T, deadline time.Time, carriers ...kernel.UUID) *tender.Tender {
	t.Helper()
	aggregate := newOpenTender(t, deadline, carriers...)
	require.NoError(t, aggregate.Close())
	aggregate.ClearDomainEvents()
	return aggregate
}

// newChildTender builds a Draft tier-one tender chained to the given parent.
func newChildTender(t *testing.T, parent *tender.Tender, carriers ...kernel.UUID) *tender.Tender {
	t.Helper()
	parentID := parent.ID()
	child, err := tender.NewTender(
		kernel.NewUUID(), "TND-000002", parent.OrderID(), nil,
		parent.Mode(), 1, &parentID, parent.OfferDeadline().Add(time.Hour), carriers,
	)
	require.NoError(t, err)
	child.ClearDomainEvents()
	return child
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(amount, "EUR")
	require.NoError(t, err)
	return price
}

func submitBid(t *testing.T, aggregate *tender.Tender, carrierID kernel.UUID) {
	t.Helper()
	_, err := aggregate.SubmitOffer(
		carrierID, mustMoney(t, 100000),
		aggregate.OfferDeadline().Add(24*time.Hour), nil, time.Now().UTC(),
	)
	require.NoError(t, err)
	aggregate.ClearDomainEvents()
}
