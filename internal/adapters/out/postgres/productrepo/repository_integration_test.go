package productrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository, including the row-level locking that serializes
// concurrent inventory mutations.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsCounters() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Mug", 12.50, 10)
	suite.Require().NoError(testProduct.Reserve(3))

	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)

	suite.Equal(testProduct.ID(), retrieved.ID())
	suite.Equal("Mug", retrieved.Name())
	suite.InDelta(12.50, retrieved.Price(), 0.001)
	suite.Equal(10, retrieved.Quantity())
	suite.Equal(3, retrieved.Reserved())
	suite.Equal(7, retrieved.Available())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsCounterChanges() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Mug", 12.50, 10)
	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(testProduct.Reserve(4))
	suite.Require().NoError(testProduct.Consume(4))
	suite.Require().NoError(suite.repository.Update(ctx, testProduct))

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Quantity())
	suite.Equal(0, retrieved.Reserved())
	suite.Equal(6, retrieved.Available())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistentProduct_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestProduct("Ghost", 1.00, 1))
	suite.Require().Error(err)
}

// TestGetForUpdate_SerializesConcurrentReservations runs two transactions that
// both read-modify-write the same product through GetForUpdate. The row lock
// forces the second to wait for the first, so both reservations land instead
// of one overwriting the other.
func (suite *ProductRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesConcurrentReservations() {
	ctx := context.Background()

	testProduct := suite.createTestProduct("Mug", 12.50, 10)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	reserve := func(qty int) error {
		return suite.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			repo := productrepo.NewGormProductRepository(tx, suite.tracker)

			p, err := repo.GetForUpdate(ctx, testProduct.ID())
			if err != nil {
				return err
			}
			if err := p.Reserve(qty); err != nil {
				return err
			}
			return repo.Update(ctx, p)
		})
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- reserve(3)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		suite.Require().NoError(err)
	}

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Reserved())
	suite.Equal(4, retrieved.Available())
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name string, price float64, quantity int) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, "", price, quantity)
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
