package commands_test

import (
	"context"
	"time"

	"tendering/internal/core/application/usecases/commands"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTenderRepository struct{ mock.Mock }

func (m *MockTenderRepository) Add(ctx context.Context, t *tender.Tender) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenderRepository) Update(ctx context.Context, t *tender.Tender) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTenderRepository) Get(ctx context.Context, id kernel.UUID) (*tender.Tender, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tender.Tender), args.Error(1)
}

func (m *MockTenderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*tender.Tender, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tender.Tender), args.Error(1)
}

func (m *MockTenderRepository) GetByOffer(ctx context.Context, offerID kernel.UUID) (*tender.Tender, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tender.Tender), args.Error(1)
}

func (m *MockTenderRepository) GetChild(ctx context.Context, parentID kernel.UUID) (*tender.Tender, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tender.Tender), args.Error(1)
}

func (m *MockTenderRepository) GetOpenPastDeadline(ctx context.Context, now time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockTenderRepository) GetClosedWithDraftChild(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTenderUoW struct{ mock.Mock }

func (m *MockTenderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTenderUoW) TenderRepository() ports.TenderRepository {
	args := m.Called()
	return args.Get(0).(ports.TenderRepository)
}

type MockTenderUoWFactory struct{ mock.Mock }

func (m *MockTenderUoWFactory) Create() commands.TenderUoW {
	args := m.Called()
	return args.Get(0).(commands.TenderUoW)
}

type MockBrokerNetwork struct{ mock.Mock }

func (m *MockBrokerNetwork) Query(ctx context.Context, brokerID kernel.UUID) (map[int][]kernel.UUID, error) {
	args := m.Called(ctx, brokerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]kernel.UUID), args.Error(1)
}

type MockOrderRegistry struct{ mock.Mock }

func (m *MockOrderRegistry) Exists(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockShipmentService struct{ mock.Mock }

func (m *MockShipmentService) SetCarrier(ctx context.Context, shipmentID, carrierID kernel.UUID) error {
	args := m.Called(ctx, shipmentID, carrierID)
	return args.Error(0)
}

type MockNumberSequence struct{ mock.Mock }

func (m *MockNumberSequence) Next(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}
