package commands_test

import (
	"context"
	"testing"
	"time"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func escalateCmd(t *testing.T, tenderID kernel.UUID) commands.EscalateCascadeCommand {
	t.Helper()
	cmd, err := commands.NewEscalateCascadeCommand(tenderID)
	require.NoError(t, err)
	return cmd
}

func TestEscalateCascadeCommandHandler_Handle_OpensDraftChild(t *testing.T) {
	ctx := t.Context()
	parent := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())
	child := newChildTender(t, parent, kernel.NewUUID())

	repo := new(MockTenderRepository)
	uow := new(MockTenderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TenderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once(),
		repo.On("GetChild", mock.Anything, parent.ID()).Return(child, nil).Once(),
		repo.On("GetForUpdate", mock.Anything, child.ID()).Return(child, nil).Once(),
		repo.On("Update", mock.Anything, child).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	bus := events.NewBus()
	opened := 0
	bus.Subscribe(events.TenderOpened, func(_ context.Context, _ events.DomainEvent) error {
		opened++
		return nil
	})

	h := commands.NewEscalateCascadeCommandHandler(factory, bus)
	require.NoError(t, h.Handle(ctx, escalateCmd(t, parent.ID())))

	assert.Equal(t, tender.Open, child.Status())
	assert.Equal(t, 1, opened)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEscalateCascadeCommandHandler_Handle_NoOpWhenAwardableOffer(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	parent := newOpenTender(t, time.Now().Add(time.Hour), carrierID)
	submitBid(t, parent, carrierID)
	require.NoError(t, parent.Close())
	parent.ClearDomainEvents()

	repo := new(MockTenderRepository)
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
	require.NoError(t, h.Handle(ctx, escalateCmd(t, parent.ID())))
	repo.AssertNotCalled(t, "GetChild", mock.Anything, mock.Anything)
}

func TestEscalateCascadeCommandHandler_Handle_NoOpWhenNotClosed(t *testing.T) {
	ctx := t.Context()

	for _, build := range map[string]func() *tender.Tender{
		"open parent": func() *tender.Tender {
			return newOpenTender(t, time.Now().Add(time.Hour), kernel.NewUUID())
		},
		"cancelled parent": func() *tender.Tender {
			parent := newOpenTender(t, time.Now().Add(time.Hour), kernel.NewUUID())
			require.NoError(t, parent.Cancel())
			parent.ClearDomainEvents()
			return parent
		},
	} {
		parent := build()

		repo := new(MockTenderRepository)
		uow := new(MockTenderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TenderRepository").Return(repo).Once()
		repo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockTenderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
		require.NoError(t, h.Handle(ctx, escalateCmd(t, parent.ID())))
		repo.AssertNotCalled(t, "GetChild", mock.Anything, mock.Anything)
	}
}

func TestEscalateCascadeCommandHandler_Handle_NoOpOnLastTier(t *testing.T) {
	ctx := t.Context()
	parent := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())

	repo := new(MockTenderRepository)
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once()
	repo.On("GetChild", mock.Anything, parent.ID()).
		Return(nil, errs.NewObjectNotFoundError("parentTenderID", parent.ID().String())).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
	require.NoError(t, h.Handle(ctx, escalateCmd(t, parent.ID())))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEscalateCascadeCommandHandler_Handle_RedeliveryIsIdempotent(t *testing.T) {
	ctx := t.Context()
	parent := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())
	child := newChildTender(t, parent, kernel.NewUUID())
	require.NoError(t, child.Open())
	child.ClearDomainEvents()

	repo := new(MockTenderRepository)
	uow := new(MockTenderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TenderRepository").Return(repo).Once()
	repo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once()
	repo.On("GetChild", mock.Anything, parent.ID()).Return(child, nil).Once()
	repo.On("GetForUpdate", mock.Anything, child.ID()).Return(child, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
	require.NoError(t, h.Handle(ctx, escalateCmd(t, parent.ID())))

	assert.Equal(t, tender.Open, child.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
