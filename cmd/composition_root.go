package cmd

import (
	"context"

	"tendering/internal/adapters/out/collaborators"
	"tendering/internal/adapters/out/postgres"
	"tendering/internal/adapters/out/postgres/sequencer"
	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/application/usecases/queries"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/services"
	"tendering/internal/core/ports"
	"tendering/internal/pkg/events"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and the event bus into
// command and query handlers. Handlers are created on demand; the shared
// pieces (bus, hooks, planner, clients) are created once.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	bus      *events.Bus
	hooks    *commands.Hooks
	resolver services.TierResolver
	planner  services.CascadePlanner

	brokerNetwork   ports.BrokerNetwork
	orderRegistry   ports.OrderRegistry
	shipmentService ports.ShipmentService
	sequence        ports.NumberSequence
}

// NewCompositionRoot builds the object graph from configuration and the
// database handle. The event-driven escalation subscription is registered
// here, so every composition of the application reacts to tender closes the
// same way.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	resolver := services.NewTierResolver()
	planner, err := services.NewCascadePlanner(resolver)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      postgres.NewGormUnitOfWorkFactory(gormDB),
		bus:             events.NewBus(),
		hooks:           commands.NewHooks(),
		resolver:        resolver,
		planner:         planner,
		brokerNetwork:   collaborators.NewBrokerNetworkClient(config.BrokerServiceURL),
		orderRegistry:   collaborators.NewOrderRegistryClient(config.OrderServiceURL),
		shipmentService: collaborators.NewShipmentServiceClient(config.ShipmentServiceURL),
		sequence:        sequencer.NewGormNumberSequence(gormDB),
	}

	root.subscribeEscalation()
	return root, nil
}

// Hooks exposes the hook registry so deployments can register policy
// handlers before the server starts.
func (c *CompositionRoot) Hooks() *commands.Hooks {
	return c.hooks
}

// subscribeEscalation routes every tender close through the escalation
// handler. The handler re-checks persisted state under the parent row lock,
// so redelivery and races with the sweep are no-ops.
func (c *CompositionRoot) subscribeEscalation() {
	escalateHandler := c.CreateEscalateCascadeCommandHandler()

	c.bus.Subscribe(events.TenderClosed, func(ctx context.Context, event events.DomainEvent) error {
		tenderID, err := kernel.UUIDFromString(event.TenderID)
		if err != nil {
			return err
		}

		cmd, err := commands.NewEscalateCascadeCommand(tenderID)
		if err != nil {
			return err
		}
		return escalateHandler.Handle(ctx, cmd)
	})
}

func (c *CompositionRoot) tenderUoWFactory() commands.TenderUoWFactory {
	return FuncTenderUoWFactory(func() commands.TenderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCascadeCommandHandler() commands.CreateCascadeCommandHandler {
	return commands.NewCreateCascadeCommandHandler(
		c.tenderUoWFactory(),
		c.brokerNetwork,
		c.orderRegistry,
		c.sequence,
		c.resolver,
		c.planner,
		c.bus,
		c.hooks,
	)
}

func (c *CompositionRoot) CreateCreateTenderCommandHandler() commands.CreateTenderCommandHandler {
	return commands.NewCreateTenderCommandHandler(
		c.tenderUoWFactory(),
		c.orderRegistry,
		c.sequence,
		c.bus,
		c.hooks,
	)
}

func (c *CompositionRoot) CreateOpenTenderCommandHandler() commands.OpenTenderCommandHandler {
	return commands.NewOpenTenderCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateCloseTenderCommandHandler() commands.CloseTenderCommandHandler {
	return commands.NewCloseTenderCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateCancelTenderCommandHandler() commands.CancelTenderCommandHandler {
	return commands.NewCancelTenderCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	return commands.NewSubmitOfferCommandHandler(c.tenderUoWFactory(), c.bus, c.hooks)
}

func (c *CompositionRoot) CreateWithdrawOfferCommandHandler() commands.WithdrawOfferCommandHandler {
	return commands.NewWithdrawOfferCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	return commands.NewAcceptOfferCommandHandler(c.tenderUoWFactory(), c.bus, c.hooks)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	return commands.NewRejectOfferCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateAwardTenderCommandHandler() commands.AwardTenderCommandHandler {
	return commands.NewAwardTenderCommandHandler(
		c.tenderUoWFactory(),
		c.shipmentService,
		c.bus,
		c.hooks,
	)
}

func (c *CompositionRoot) CreateEscalateCascadeCommandHandler() commands.EscalateCascadeCommandHandler {
	return commands.NewEscalateCascadeCommandHandler(c.tenderUoWFactory(), c.bus)
}

func (c *CompositionRoot) CreateSweepDeadlinesCommandHandler() commands.SweepDeadlinesCommandHandler {
	return commands.NewSweepDeadlinesCommandHandler(
		c.tenderUoWFactory(),
		c.CreateCloseTenderCommandHandler(),
	)
}

func (c *CompositionRoot) CreateSweepEscalationsCommandHandler() commands.SweepEscalationsCommandHandler {
	return commands.NewSweepEscalationsCommandHandler(
		c.tenderUoWFactory(),
		c.CreateEscalateCascadeCommandHandler(),
	)
}

func (c *CompositionRoot) CreateGetCascadeQueryHandler() queries.GetCascadeQueryHandler {
	return queries.NewGetCascadeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenTendersQueryHandler() queries.GetOpenTendersQueryHandler {
	return queries.NewGetOpenTendersQueryHandler(c.gormDB)
}

type FuncTenderUoWFactory func() commands.TenderUoW

func (f FuncTenderUoWFactory) Create() commands.TenderUoW {
	return f()
}
