package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TrackOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderAddressDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewTrackOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *TrackOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_addresses, order_items").Error
	suite.Require().NoError(err)
}

func (suite *TrackOrderQueryHandlerTestSuite) addOrder(mutate func(o *order.Order)) *order.Order {
	price, err := kernel.NewMoneyFromString("12.00")
	suite.Require().NoError(err)

	product, err := order.NewProduct(kernel.NewUUID(), "Lasagna", price)
	suite.Require().NoError(err)
	item, err := order.NewOrderItem(product, 1, price, price)
	suite.Require().NoError(err)
	address, err := order.NewStreetAddress(kernel.NewUUID(), "Main St 1", "1000AA", "Amsterdam")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, price, []*order.OrderItem{item})
	suite.Require().NoError(err)
	suite.Require().NoError(o.ValidateOrder())
	suite.Require().NoError(o.InitializeOrder(kernel.NewUUID))
	if mutate != nil {
		mutate(o)
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *TrackOrderQueryHandlerTestSuite) track(trackingID kernel.UUID) (queries.TrackOrderQueryResponse, error) {
	query, err := queries.NewTrackOrderQuery(trackingID)
	suite.Require().NoError(err)
	return suite.handler.Handle(context.Background(), query)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_PendingOrder() {
	o := suite.addOrder(nil)

	result, err := suite.track(o.TrackingID())

	suite.Require().NoError(err)
	suite.True(o.TrackingID().IsEqual(result.TrackingID))
	suite.Equal(order.Pending, result.Status)
	suite.Nil(result.FailureMessages)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_CancelledOrderWithMessages() {
	o := suite.addOrder(func(o *order.Order) {
		suite.Require().NoError(o.Pay())
		suite.Require().NoError(o.InitCancel([]string{"restaurant closed"}))
		suite.Require().NoError(o.Cancel([]string{"", "refund issued"}))
	})

	result, err := suite.track(o.TrackingID())

	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, result.Status)
	suite.Equal([]string{"restaurant closed", "refund issued"}, result.FailureMessages)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_ReflectsLaterUpdates() {
	o := suite.addOrder(nil)
	suite.Require().NoError(o.Pay())
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))

	result, err := suite.track(o.TrackingID())

	suite.Require().NoError(err)
	suite.Equal(order.Paid, result.Status)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_LooksUpByTrackingIDOnly() {
	o := suite.addOrder(nil)

	_, err := suite.track(o.ID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_UnknownTrackingID() {
	_, err := suite.track(kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_QueryNotConstructed() {
	_, err := suite.handler.Handle(context.Background(), queries.TrackOrderQuery{})

	suite.ErrorIs(err, queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
