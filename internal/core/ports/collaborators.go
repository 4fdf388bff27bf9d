package ports

import (
	"context"

	"tendering/internal/core/domain/model/kernel"
)

// BrokerNetwork exposes the broker's carrier preference hierarchy.
// The tendering service only reads the network; maintaining it belongs to
// the broker management context.
type BrokerNetwork interface {
	// Query returns the broker's active carrier edges grouped by tier
	// number. Returns ObjectNotFoundError for an unknown broker.
	Query(ctx context.Context, brokerID kernel.UUID) (map[int][]kernel.UUID, error)
}

// OrderRegistry verifies that a shipment order exists before a tender is
// opened against it.
type OrderRegistry interface {
	// Exists returns nil when the order is known,
	// ObjectNotFoundError otherwise.
	Exists(ctx context.Context, orderID kernel.UUID) error
}

// ShipmentService assigns the winning carrier to the shipment when a tender
// is awarded. Called inside the award transaction so a collaborator failure
// rolls the award back.
type ShipmentService interface {
	SetCarrier(ctx context.Context, shipmentID, carrierID kernel.UUID) error
}

// NumberSequence issues gapless human-readable display numbers for new
// tenders, e.g. "TND-000042".
type NumberSequence interface {
	Next(ctx context.Context, prefix string) (string, error)
}
