package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency; the
// query tests only use the repositories for seeding.
type mockAggregateTracker struct {
	mock.Mock
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL instance, seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	productRepo *productrepo.GormProductRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &productrepo.ProductDTO{}))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	tracker := new(mockAggregateTracker)
	tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, tracker)
	suite.productRepo = productrepo.NewGormProductRepository(suite.db, tracker)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Owner_ReturnsFullOrder() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	seeded := suite.seedOrder(userID)
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(seeded.ID(), suite.customer(userID))
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), resp.ID)
	suite.Equal(userID, resp.UserID)
	suite.Equal("pending", resp.Status)
	suite.Equal("pending", resp.PaymentStatus)
	suite.Equal("credit_card", resp.PaymentMethod)
	suite.Equal("standard", resp.ShippingMethod)
	suite.InDelta(seeded.TotalAmount(), resp.TotalAmount, 0.001)
	suite.Equal("1 Main St", resp.ShippingAddress.Street)

	suite.Require().Len(resp.Items, 2)
	suite.Equal("Mug", resp.Items[0].Name)
	suite.Equal(2, resp.Items[0].Quantity)
	suite.Equal("L", resp.Items[1].Variant)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_OtherCustomer_ReturnsForbidden() {
	ctx := context.Background()

	seeded := suite.seedOrder(kernel.NewUUID())
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(seeded.ID(), suite.customer(kernel.NewUUID()))
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)

	var forbiddenErr *errs.ForbiddenError
	suite.Require().ErrorAs(err, &forbiddenErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_Admin_SeesAnyOrder() {
	ctx := context.Background()

	seeded := suite.seedOrder(kernel.NewUUID())
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(seeded.ID(), suite.admin())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(seeded.ID(), resp.ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrder_NonExistent_ReturnsNotFound() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), suite.admin())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_CustomerIsScopedToOwnOrders() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	mine := suite.seedOrder(userID)
	suite.seedOrder(kernel.NewUUID())
	suite.seedOrder(kernel.NewUUID())

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(
		suite.customer(userID), queries.OrderFilters{}, queries.Page{}, queries.Sort{})
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(mine.ID(), resp.Orders[0].ID)
	suite.Len(resp.Orders[0].Items, 2)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_StatusFilter() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	suite.seedOrder(userID)
	shipped := suite.seedOrder(userID)
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).
			Where("id = ?", shipped.ID().Bytes()).
			Update("status", int(order.Shipped)).Error)

	status := order.Shipped
	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(
		suite.admin(), queries.OrderFilters{Status: &status}, queries.Page{}, queries.Sort{})
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(shipped.ID(), resp.Orders[0].ID)
	suite.Equal("shipped", resp.Orders[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_DateRangeFilter() {
	ctx := context.Background()

	old := suite.seedOrder(kernel.NewUUID())
	suite.seedOrder(kernel.NewUUID())

	backdate := time.Now().Add(-48 * time.Hour)
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).
			Where("id = ?", old.ID().Bytes()).
			Update("created_at", backdate).Error)

	cutoff := time.Now().Add(-24 * time.Hour)
	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(
		suite.admin(), queries.OrderFilters{CreatedBefore: &cutoff}, queries.Page{}, queries.Sort{})
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Orders, 1)
	suite.Equal(old.ID(), resp.Orders[0].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_PaginationAndTotal() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		suite.seedOrder(kernel.NewUUID())
	}

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(
		suite.admin(), queries.OrderFilters{}, queries.Page{Number: 2, Size: 2}, queries.Sort{})
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(5), resp.Total)
	suite.Len(resp.Orders, 2)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrders_SortByTotalAmount() {
	ctx := context.Background()

	cheap := suite.seedOrder(kernel.NewUUID())
	expensive := suite.seedOrder(kernel.NewUUID())
	suite.Require().NoError(
		suite.db.Model(&orderrepo.OrderDTO{}).
			Where("id = ?", expensive.ID().Bytes()).
			Update("total_amount", 999.99).Error)

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(
		suite.admin(), queries.OrderFilters{}, queries.Page{},
		queries.Sort{Field: "total_amount", Desc: true})
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(resp.Orders, 2)
	suite.Equal(expensive.ID(), resp.Orders[0].ID)
	suite.Equal(cheap.ID(), resp.Orders[1].ID)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProducts_ReturnsCatalogWithDerivedAvailable() {
	ctx := context.Background()

	mug, err := product.NewProduct(kernel.NewUUID(), "Mug", "ceramic", 12.50, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(mug.Reserve(3))
	suite.Require().NoError(suite.productRepo.Add(ctx, mug))

	shirt, err := product.NewProduct(kernel.NewUUID(), "T-Shirt", "", 25.00, 5)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.productRepo.Add(ctx, shirt))

	handler := queries.NewGetProductsQueryHandler(suite.db)
	products, err := handler.Handle(ctx, queries.NewGetProductsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(products, 2)
	suite.Equal("Mug", products[0].Name)
	suite.Equal(10, products[0].Quantity)
	suite.Equal(3, products[0].Reserved)
	suite.Equal(7, products[0].Available)
	suite.Equal("T-Shirt", products[1].Name)
	suite.Equal(5, products[1].Available)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetProducts_EmptyCatalog_ReturnsEmptySlice() {
	ctx := context.Background()

	handler := queries.NewGetProductsQueryHandler(suite.db)
	products, err := handler.Handle(ctx, queries.NewGetProductsQuery())
	suite.Require().NoError(err)

	suite.NotNil(products)
	suite.Empty(products)
}

// seedOrder persists a pending order with two line items for the given user.
func (suite *QueryHandlersIntegrationTestSuite) seedOrder(userID kernel.UUID) *order.Order {
	item1, err := order.NewItem(kernel.NewUUID(), "Mug", 12.50, 2, "")
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), "T-Shirt", 25.00, 1, "L")
	suite.Require().NoError(err)

	addr, err := order.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	suite.Require().NoError(err)

	totals := order.Totals{Subtotal: 50.00, ShippingCost: 5.99, Tax: 3.50, Total: 59.49}

	seeded, err := order.NewOrder(kernel.NewUUID(), userID, []order.Item{item1, item2},
		addr, addr, order.CreditCard, order.Standard, totals, "")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *QueryHandlersIntegrationTestSuite) customer(userID kernel.UUID) kernel.Principal {
	principal, err := kernel.NewPrincipal(userID, kernel.RoleCustomer)
	suite.Require().NoError(err)
	return principal
}

func (suite *QueryHandlersIntegrationTestSuite) admin() kernel.Principal {
	principal, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.RoleAdmin)
	suite.Require().NoError(err)
	return principal
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
