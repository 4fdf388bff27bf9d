package services

import (
	"fmt"
	"sort"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"
)

// ErrNoEligibleTiers is returned when every requested tier resolves to an
// empty carrier set and no tender can be created.
var ErrNoEligibleTiers = errs.NewValueIsRequiredError("at least one tier with eligible carriers")

// TierRequest names one tier of the broker's network to include in a cascade.
type TierRequest struct {
	// Tier is the tier number as configured in the broker's network.
	Tier int
	// CarrierFilter optionally narrows the tier to a carrier subset.
	// Empty means every carrier of the tier is invited.
	CarrierFilter []kernel.UUID
	// OfferDeadlineMinutes is the bidding window length, counted from plan time.
	OfferDeadlineMinutes int
}

// CascadePlan is the ordered tender chain produced by the planner.
// Tenders are sorted by cascade position; the first element is the root.
type CascadePlan struct {
	Tenders []*tender.Tender
}

// Root returns the first, parentless tender of the plan.
func (p *CascadePlan) Root() *tender.Tender {
	return p.Tenders[0]
}

// CascadePlanner builds the tender chain of a cascade from resolved network
// tiers.
type CascadePlanner interface {
	Plan(
		orderID kernel.UUID,
		shipmentID *kernel.UUID,
		mode tender.Mode,
		requests []TierRequest,
		network []CarrierTier,
		now time.Time,
		nextNumber func() (string, error),
	) (*CascadePlan, error)
}

type cascadePlanner struct {
	resolver TierResolver
}

// NewCascadePlanner creates the default CascadePlanner on top of the given
// resolver.
func NewCascadePlanner(resolver TierResolver) (CascadePlanner, error) {
	if resolver == nil {
		return nil, errs.NewValueIsRequiredError("resolver")
	}
	return &cascadePlanner{resolver: resolver}, nil
}

// Plan builds one tender per requested tier that still has eligible carriers
// after filtering.
//
// Requests are sorted ascending by requested tier number; a tier requested
// twice is an error. Requested tiers absent from the network, or emptied by
// their carrier filter, are skipped silently. Each surviving tender keeps its
// requested tier number, so a skipped tier leaves a gap rather than renumber
// the rest. The first surviving tier becomes the parentless root, even when
// lower tiers were skipped, and each later tender chains to its predecessor.
//
// Sequential mode opens only the root; every later tender stays Draft until
// escalation opens it. Parallel mode opens every tender immediately.
//
// Every offer deadline is computed as now + the request's
// OfferDeadlineMinutes, which must be positive.
func (p *cascadePlanner) Plan(
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	mode tender.Mode,
	requests []TierRequest,
	network []CarrierTier,
	now time.Time,
	nextNumber func() (string, error),
) (*CascadePlan, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("requests")
	}
	if nextNumber == nil {
		return nil, errs.NewValueIsRequiredError("nextNumber")
	}

	ordered := make([]TierRequest, len(requests))
	copy(ordered, requests)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Tier < ordered[j].Tier
	})

	seen := make(map[int]struct{}, len(ordered))
	for _, request := range ordered {
		if _, ok := seen[request.Tier]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("requests",
				fmt.Errorf("tier %d requested twice", request.Tier))
		}
		seen[request.Tier] = struct{}{}

		if request.OfferDeadlineMinutes <= 0 {
			return nil, errs.NewValueIsOutOfRangeError(
				"offerDeadlineMinutes", request.OfferDeadlineMinutes, 1, "unbounded")
		}
	}

	networkByTier := make(map[int]CarrierTier, len(network))
	for _, networkTier := range network {
		networkByTier[networkTier.Tier] = networkTier
	}

	var tenders []*tender.Tender
	var parentID *kernel.UUID
	for _, request := range ordered {
		networkTier, ok := networkByTier[request.Tier]
		if !ok {
			continue
		}

		eligible := p.resolver.Intersect(networkTier, request.CarrierFilter)
		if len(eligible.Carriers) == 0 {
			continue
		}

		number, err := nextNumber()
		if err != nil {
			return nil, err
		}

		id := kernel.NewUUID()
		newTender, err := tender.NewTender(
			id,
			number,
			orderID,
			shipmentID,
			mode,
			request.Tier,
			parentID,
			now.Add(time.Duration(request.OfferDeadlineMinutes)*time.Minute),
			eligible.Carriers,
		)
		if err != nil {
			return nil, err
		}

		tenders = append(tenders, newTender)
		parentID = &id
	}

	if len(tenders) == 0 {
		return nil, ErrNoEligibleTiers
	}

	for i, planned := range tenders {
		if mode == tender.Sequential && i > 0 {
			continue
		}
		if err := planned.Open(); err != nil {
			return nil, err
		}
	}

	return &CascadePlan{Tenders: tenders}, nil
}
