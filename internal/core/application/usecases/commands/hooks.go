package commands

import (
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/core/domain/services"
	"tendering/internal/pkg/hooks"
)

// Hook payloads carry the operation parameters through the pre/post chains.
// Pre handlers receive them by pointer and may rewrite fields before the
// handler proceeds; post handlers receive the final value.
type (
	// CascadeCreatePayload describes a cascade about to be created.
	CascadeCreatePayload struct {
		OrderID    kernel.UUID
		ShipmentID *kernel.UUID
		BrokerID   kernel.UUID
		Mode       tender.Mode
		Tiers      []services.TierRequest
	}

	// TenderCreatePayload describes a single tender about to be created
	// through the direct path.
	TenderCreatePayload struct {
		OrderID       kernel.UUID
		ShipmentID    *kernel.UUID
		Carriers      []kernel.UUID
		OfferDeadline time.Time
	}

	// OfferSubmitPayload describes a bid about to be placed.
	OfferSubmitPayload struct {
		TenderID   kernel.UUID
		CarrierID  kernel.UUID
		Price      kernel.Money
		ValidUntil time.Time
		Conditions []string
	}

	// OfferAcceptPayload describes a single offer about to be accepted.
	OfferAcceptPayload struct {
		OfferID kernel.UUID
	}

	// TenderAwardPayload describes an award about to be finalized.
	TenderAwardPayload struct {
		TenderID kernel.UUID
		OfferID  kernel.UUID
	}
)

// Hooks is the registry of lifecycle interception points. One chain per
// guarded operation; chains are populated in the composition root. The zero
// value of every chain is a usable no-op.
type Hooks struct {
	CascadeCreate hooks.Chain[CascadeCreatePayload]
	TenderCreate  hooks.Chain[TenderCreatePayload]
	OfferSubmit   hooks.Chain[OfferSubmitPayload]
	OfferAccept   hooks.Chain[OfferAcceptPayload]
	TenderAward   hooks.Chain[TenderAwardPayload]
}

// NewHooks creates an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{}
}
