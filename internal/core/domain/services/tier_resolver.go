package services

import (
	"sort"

	"tendering/internal/core/domain/model/kernel"
)

// CarrierTier is one rank of a broker's carrier preference hierarchy:
// the tier number as configured in the network and the carriers it holds.
type CarrierTier struct {
	Tier     int
	Carriers []kernel.UUID
}

// TierResolver turns a broker's raw carrier network edges into ordered tiers
// ready for cascade planning.
type TierResolver interface {
	Resolve(edges map[int][]kernel.UUID) []CarrierTier
	Intersect(tier CarrierTier, filter []kernel.UUID) CarrierTier
}

type tierResolver struct{}

// NewTierResolver creates the default TierResolver.
func NewTierResolver() TierResolver {
	return &tierResolver{}
}

// Resolve groups the network edges into tiers sorted ascending by tier
// number. Carriers are deduplicated within a tier, preserving first-seen
// order. Tiers with no carriers are dropped.
func (r *tierResolver) Resolve(edges map[int][]kernel.UUID) []CarrierTier {
	tiers := make([]CarrierTier, 0, len(edges))
	for tier, carriers := range edges {
		deduped := dedupeCarriers(carriers)
		if len(deduped) == 0 {
			continue
		}
		tiers = append(tiers, CarrierTier{Tier: tier, Carriers: deduped})
	}

	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Tier < tiers[j].Tier
	})
	return tiers
}

// Intersect narrows a tier to the carriers named in the filter. A nil or
// empty filter leaves the tier unchanged. Carriers in the filter that are
// not part of the tier are ignored.
func (r *tierResolver) Intersect(tier CarrierTier, filter []kernel.UUID) CarrierTier {
	if len(filter) == 0 {
		return tier
	}

	allowed := make(map[kernel.UUID]struct{}, len(filter))
	for _, carrierID := range filter {
		allowed[carrierID] = struct{}{}
	}

	kept := make([]kernel.UUID, 0, len(tier.Carriers))
	for _, carrierID := range tier.Carriers {
		if _, ok := allowed[carrierID]; ok {
			kept = append(kept, carrierID)
		}
	}

	return CarrierTier{Tier: tier.Tier, Carriers: kept}
}

func dedupeCarriers(carriers []kernel.UUID) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(carriers))
	deduped := make([]kernel.UUID, 0, len(carriers))
	for _, carrierID := range carriers {
		if _, ok := seen[carrierID]; ok {
			continue
		}
		seen[carrierID] = struct{}{}
		deduped = append(deduped, carrierID)
	}
	return deduped
}
