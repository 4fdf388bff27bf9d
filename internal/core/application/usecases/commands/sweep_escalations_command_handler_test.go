package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepEscalationsCommandHandler_Handle_OpensStuckTiers(t *testing.T) {
	ctx := t.Context()
	parent := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())
	child := newChildTender(t, parent, kernel.NewUUID())

	listRepo := new(MockTenderRepository)
	listRepo.On("GetClosedWithDraftChild", mock.Anything).
		Return([]kernel.UUID{parent.ID()}, nil).Once()
	listUoW := new(MockTenderUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("TenderRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()

	escRepo := new(MockTenderRepository)
	escRepo.On("GetForUpdate", mock.Anything, parent.ID()).Return(parent, nil).Once()
	escRepo.On("GetChild", mock.Anything, parent.ID()).Return(child, nil).Once()
	escRepo.On("GetForUpdate", mock.Anything, child.ID()).Return(child, nil).Once()
	escRepo.On("Update", mock.Anything, child).Return(nil).Once()
	escUoW := new(MockTenderUoW)
	escUoW.On("Begin", ctx).Return(nil).Once()
	escUoW.On("TenderRepository").Return(escRepo).Once()
	escUoW.On("Commit", ctx).Return(nil).Once()
	escUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(escUoW).Once()

	bus := events.NewBus()
	openedEvents := 0
	bus.Subscribe(events.TenderOpened, func(_ context.Context, event events.DomainEvent) error {
		openedEvents++
		assert.Equal(t, child.ID().String(), event.TenderID)
		return nil
	})

	escalateHandler := commands.NewEscalateCascadeCommandHandler(factory, bus)
	h := commands.NewSweepEscalationsCommandHandler(factory, escalateHandler)

	visited, err := h.Handle(ctx, commands.NewSweepEscalationsCommand())
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
	assert.Equal(t, tender.Open, child.Status())
	assert.Equal(t, 1, openedEvents)
	listRepo.AssertExpectations(t)
	escRepo.AssertExpectations(t)
}

func TestSweepEscalationsCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()

	listRepo := new(MockTenderRepository)
	listRepo.On("GetClosedWithDraftChild", mock.Anything).
		Return([]kernel.UUID{}, nil).Once()
	listUoW := new(MockTenderUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("TenderRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()
	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(listUoW).Once()

	escalateHandler := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
	h := commands.NewSweepEscalationsCommandHandler(factory, escalateHandler)

	visited, err := h.Handle(ctx, commands.NewSweepEscalationsCommand())
	require.NoError(t, err)
	assert.Zero(t, visited)
}

func TestSweepEscalationsCommandHandler_Handle_FailureDoesNotStopSweep(t *testing.T) {
	ctx := t.Context()
	broken := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())
	stuck := newClosedTender(t, time.Now().Add(-time.Minute), kernel.NewUUID())
	child := newChildTender(t, stuck, kernel.NewUUID())

	listRepo := new(MockTenderRepository)
	listRepo.On("GetClosedWithDraftChild", mock.Anything).
		Return([]kernel.UUID{broken.ID(), stuck.ID()}, nil).Once()
	listUoW := new(MockTenderUoW)
	listUoW.On("Begin", ctx).Return(nil).Once()
	listUoW.On("TenderRepository").Return(listRepo).Once()
	listUoW.On("Commit", ctx).Return(nil).Once()

	brokenRepo := new(MockTenderRepository)
	brokenRepo.On("GetForUpdate", mock.Anything, broken.ID()).
		Return(nil, errors.New("connection reset")).Once()
	brokenUoW := new(MockTenderUoW)
	brokenUoW.On("Begin", ctx).Return(nil).Once()
	brokenUoW.On("TenderRepository").Return(brokenRepo).Once()
	brokenUoW.On("Rollback", ctx).Return(nil).Once()

	escRepo := new(MockTenderRepository)
	escRepo.On("GetForUpdate", mock.Anything, stuck.ID()).Return(stuck, nil).Once()
	escRepo.On("GetChild", mock.Anything, stuck.ID()).Return(child, nil).Once()
	escRepo.On("GetForUpdate", mock.Anything, child.ID()).Return(child, nil).Once()
	escRepo.On("Update", mock.Anything, child).Return(nil).Once()
	escUoW := new(MockTenderUoW)
	escUoW.On("Begin", ctx).Return(nil).Once()
	escUoW.On("TenderRepository").Return(escRepo).Once()
	escUoW.On("Commit", ctx).Return(nil).Once()
	escUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTenderUoWFactory)
	factory.On("Create").Return(listUoW).Once()
	factory.On("Create").Return(brokenUoW).Once()
	factory.On("Create").Return(escUoW).Once()

	escalateHandler := commands.NewEscalateCascadeCommandHandler(factory, events.NewBus())
	h := commands.NewSweepEscalationsCommandHandler(factory, escalateHandler)

	visited, err := h.Handle(ctx, commands.NewSweepEscalationsCommand())
	require.ErrorContains(t, err, "connection reset")
	// the healthy candidate was still escalated
	assert.Equal(t, 2, visited)
	assert.Equal(t, tender.Open, child.Status())
}
