package commands_test

import (
	"context"
	"testing"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	aggregate := newClosedTenderWithBids(t, []kernel.UUID{carrierID})
	offerID := aggregate.OfferByCarrier(carrierID).ID()

	cmd, err := commands.NewAcceptOfferCommand(offerID)
	require.NoError(t, err)

	repo := new(MockTenderRepository)
	repo.On("GetByOffer", mock.Anything, offerID).Return(aggregate, nil).Once()
	repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	bus := events.NewBus()
	acceptedEvents := 0
	bus.Subscribe(events.OfferAccepted, func(_ context.Context, event events.DomainEvent) error {
		acceptedEvents++
		assert.Equal(t, offerID.String(), event.EntityID)
		assert.Equal(t, aggregate.ID().String(), event.TenderID)
		return nil
	})

	h := commands.NewAcceptOfferCommandHandler(factory, bus, commands.NewHooks())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, tender.OfferAccepted, aggregate.OfferByID(offerID).Status())
	assert.Equal(t, 1, acceptedEvents)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_UnknownOffer(t *testing.T) {
	ctx := t.Context()
	offerID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOfferCommand(offerID)
	require.NoError(t, err)

	repo := new(MockTenderRepository)
	repo.On("GetByOffer", mock.Anything, offerID).
		Return(nil, errs.NewObjectNotFoundError("offer", offerID.String())).Once()
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory, events.NewBus(), commands.NewHooks())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOfferCommandHandler_Handle_PendingOfferCannotBeAccepted(t *testing.T) {
	ctx := t.Context()
	silentCarrier := kernel.NewUUID()
	aggregate := newClosedTenderWithBids(t, []kernel.UUID{kernel.NewUUID()}, silentCarrier)
	pendingOfferID := aggregate.OfferByCarrier(silentCarrier).ID()

	cmd, err := commands.NewAcceptOfferCommand(pendingOfferID)
	require.NoError(t, err)

	repo := new(MockTenderRepository)
	repo.On("GetByOffer", mock.Anything, pendingOfferID).Return(aggregate, nil).Once()
	repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory, events.NewBus(), commands.NewHooks())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, tender.OfferPending, aggregate.OfferByID(pendingOfferID).Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptOfferCommandHandler_Handle_PreHookVeto(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAcceptOfferCommand(kernel.NewUUID())
	require.NoError(t, err)

	h := commands.NewAcceptOfferCommandHandler(new(MockTenderUoWFactory), events.NewBus(), vetoAcceptHooks())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVetoedByPolicy)
}

func vetoAcceptHooks() *commands.Hooks {
	h := commands.NewHooks()
	h.OfferAccept.Pre(func(_ context.Context, _ *commands.OfferAcceptPayload) error {
		return errs.NewVetoedByPolicyError("offer-accept", "offer under review")
	})
	return h
}
