package queries_test

import (
	"context"
	"testing"
	"time"

	"tendering/internal/adapters/out/postgres/tenderrepo"
	"tendering/internal/core/application/usecases/queries"
	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCascadeQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetCascadeQueryHandler
	openHandler queries.GetOpenTendersQueryHandler
}

func (suite *GetCascadeQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&tenderrepo.TenderDTO{}, &tenderrepo.OfferDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCascadeQueryHandler(db)
	suite.openHandler = queries.NewGetOpenTendersQueryHandler(db)
}

func (suite *GetCascadeQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCascadeQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE tenders CASCADE").Error
	suite.Require().NoError(err)
}

// seedCascade persists a two-tier sequential cascade and returns its tenders.
func (suite *GetCascadeQueryHandlerTestSuite) seedCascade() (*tender.Tender, *tender.Tender) {
	repo := tenderrepo.NewGormTenderRepository(suite.db, noopTracker{})
	ctx := context.Background()

	orderID := kernel.NewUUID()
	rootCarrier, childCarrier := kernel.NewUUID(), kernel.NewUUID()

	root, err := tender.NewTender(
		kernel.NewUUID(), "TND-000001", orderID, nil,
		tender.Sequential, 0, nil, time.Now().Add(time.Hour).UTC(), []kernel.UUID{rootCarrier},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(root.Open())

	rootID := root.ID()
	child, err := tender.NewTender(
		kernel.NewUUID(), "TND-000002", orderID, nil,
		tender.Sequential, 1, &rootID, time.Now().Add(2*time.Hour).UTC(), []kernel.UUID{childCarrier},
	)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, root))
	suite.Require().NoError(repo.Add(ctx, child))
	return root, child
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (suite *GetCascadeQueryHandlerTestSuite) TestHandle_WholeCascadeFromChild() {
	root, child := suite.seedCascade()

	query, err := queries.NewGetCascadeQuery(child.ID())
	suite.Require().NoError(err)

	cascade, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(cascade, 2)
	suite.True(cascade[0].ID.IsEqual(root.ID()))
	suite.Equal(0, cascade[0].Tier)
	suite.Equal("Open", cascade[0].Status)
	suite.Nil(cascade[0].ParentTenderID)

	suite.True(cascade[1].ID.IsEqual(child.ID()))
	suite.Equal(1, cascade[1].Tier)
	suite.Equal("Draft", cascade[1].Status)
	suite.Require().NotNil(cascade[1].ParentTenderID)
	suite.True(cascade[1].ParentTenderID.IsEqual(root.ID()))

	suite.Equal(1, cascade[0].TotalOffers)
	suite.Equal(0, cascade[0].SubmittedOffers)
}

func (suite *GetCascadeQueryHandlerTestSuite) TestHandle_UnknownTender() {
	query, err := queries.NewGetCascadeQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCascadeQueryHandlerTestSuite) TestHandle_OpenTenders() {
	root, _ := suite.seedCascade()

	open, err := suite.openHandler.Handle(context.Background(), queries.NewGetOpenTendersQuery())
	suite.Require().NoError(err)

	// only the root is open; the draft child is excluded
	suite.Require().Len(open, 1)
	suite.True(open[0].ID.IsEqual(root.ID()))
	suite.Equal("TND-000001", open[0].Number)
	suite.Equal(1, open[0].TotalOffers)
}

func TestGetCascadeQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetCascadeQueryHandlerTestSuite))
}
