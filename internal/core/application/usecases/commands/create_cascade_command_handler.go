package commands

import (
	"context"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/services"
	"tendering/internal/core/ports"
	"tendering/internal/pkg/events"
)

// CreateCascadeResult reports the created tender chain.
type CreateCascadeResult struct {
	// RootTenderID is the first, parentless tender of the cascade.
	RootTenderID kernel.UUID
	// CreatedTenderIDs are all tenders of the cascade in cascade order.
	CreatedTenderIDs []kernel.UUID
	// TotalTiers is the number of tenders actually created after empty
	// tiers were skipped.
	TotalTiers int
}

// CreateCascadeCommandHandler handles the business logic for starting a
// bidding cascade: it resolves the broker's network into tiers, plans the
// tender chain, and persists every tender of the cascade in one transaction.
// A failure on any tier rolls the whole cascade back, so a cascade is never
// half-created.
type CreateCascadeCommandHandler struct {
	uowFactory    TenderUoWFactory
	brokerNetwork ports.BrokerNetwork
	orderRegistry ports.OrderRegistry
	sequence      ports.NumberSequence
	resolver      services.TierResolver
	planner       services.CascadePlanner
	bus           *events.Bus
	hooks         *Hooks
}

// NewCreateCascadeCommandHandler creates a handler for cascade creation.
func NewCreateCascadeCommandHandler(
	uowFactory TenderUoWFactory,
	brokerNetwork ports.BrokerNetwork,
	orderRegistry ports.OrderRegistry,
	sequence ports.NumberSequence,
	resolver services.TierResolver,
	planner services.CascadePlanner,
	bus *events.Bus,
	hooks *Hooks,
) CreateCascadeCommandHandler {
	return CreateCascadeCommandHandler{
		uowFactory:    uowFactory,
		brokerNetwork: brokerNetwork,
		orderRegistry: orderRegistry,
		sequence:      sequence,
		resolver:      resolver,
		planner:       planner,
		bus:           bus,
		hooks:         hooks,
	}
}

// Handle processes the cascade creation command.
//
// The pre-create hook chain runs first and may veto the cascade or rewrite
// the request. The order must exist in the registry and the broker must have
// a network. The planner then builds one tender per surviving tier; all
// tenders are persisted in a single transaction. Domain events are published
// after the commit, and the post-create chain is notified last.
func (h *CreateCascadeCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCascadeCommand,
) (CreateCascadeResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateCascadeResult{}, err
	}

	payload := CascadeCreatePayload{
		OrderID:    cmd.OrderID(),
		ShipmentID: cmd.ShipmentID(),
		BrokerID:   cmd.BrokerID(),
		Mode:       cmd.Mode(),
		Tiers:      cmd.Tiers(),
	}
	if err := h.hooks.CascadeCreate.RunPre(ctx, &payload); err != nil {
		return CreateCascadeResult{}, err
	}

	if err := h.orderRegistry.Exists(ctx, payload.OrderID); err != nil {
		return CreateCascadeResult{}, err
	}

	edges, err := h.brokerNetwork.Query(ctx, payload.BrokerID)
	if err != nil {
		return CreateCascadeResult{}, err
	}

	plan, err := h.planner.Plan(
		payload.OrderID,
		payload.ShipmentID,
		payload.Mode,
		payload.Tiers,
		h.resolver.Resolve(edges),
		time.Now().UTC(),
		func() (string, error) { return h.sequence.Next(ctx, "TND") },
	)
	if err != nil {
		return CreateCascadeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateCascadeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenderRepo := uow.TenderRepository()
	for _, planned := range plan.Tenders {
		if err = tenderRepo.Add(ctx, planned); err != nil {
			return CreateCascadeResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateCascadeResult{}, err
	}

	if err = publishEvents(ctx, h.bus, plan.Tenders...); err != nil {
		return CreateCascadeResult{}, err
	}

	result := CreateCascadeResult{
		RootTenderID: plan.Root().ID(),
		TotalTiers:   len(plan.Tenders),
	}
	for _, planned := range plan.Tenders {
		result.CreatedTenderIDs = append(result.CreatedTenderIDs, planned.ID())
	}

	h.hooks.CascadeCreate.RunPost(ctx, payload)
	return result, nil
}
