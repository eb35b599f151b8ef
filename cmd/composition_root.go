package cmd

import (
	"log/slog"
	"time"

	"ordering/internal/adapters/in/amqp"
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"
	"ordering/internal/pkg/rabbitmq"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	newUUID    kernel.UUIDGenerator
	now        func() time.Time
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		newUUID:    kernel.NewUUID,
		now:        time.Now,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.newUUID, c.now)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.orderUoWFactory(), c.publisher, c.now)
}

func (c *CompositionRoot) CreateCancelPaymentCommandHandler() commands.CancelPaymentCommandHandler {
	return commands.NewCancelPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.now)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSaveRestaurantCommandHandler() commands.SaveRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateCreateOrderCommandHandler(), c.CreateTrackOrderQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateConsumers(client *rabbitmq.Client) []*amqp.Consumer {
	return []*amqp.Consumer{
		amqp.NewPaymentResponseConsumer(client, c.config.PaymentResponseQueue,
			amqp.NewPaymentResponseHandler(
				c.CreateCompletePaymentCommandHandler(),
				c.CreateCancelPaymentCommandHandler(),
			), c.logger),
		amqp.NewRestaurantApprovalResponseConsumer(client, c.config.RestaurantApprovalResponseQueue,
			amqp.NewRestaurantApprovalResponseHandler(
				c.CreateApproveOrderCommandHandler(),
				c.CreateRejectOrderCommandHandler(),
			), c.logger),
		amqp.NewRestaurantMenuConsumer(client, c.config.RestaurantMenuQueue,
			amqp.NewRestaurantMenuHandler(c.CreateSaveRestaurantCommandHandler()), c.logger),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		jobs.ExpiryConfig{
			Schedule: c.config.ExpirySchedule,
			Timeout:  c.config.PendingOrderTimeout,
		},
		c.now,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
