package cmd

import (
	"log/slog"
	"strings"

	"delify/internal/adapters/in/ws"
	"delify/internal/adapters/out/kafka"
	"delify/internal/adapters/out/postgres"
	"delify/internal/adapters/out/postgres/restaurantrepo"
	"delify/internal/core/application/usecases/commands"
	"delify/internal/core/application/usecases/queries"
	"delify/internal/core/ports"
	"delify/internal/notifications"
	"delify/internal/scheduler"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one shared unit of work
// factory, the websocket hub with its fan-out, the Kafka publisher, and the
// lifecycle scheduler. Command and query handlers are created per request
// through the Create* methods.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	restaurants *restaurantrepo.GormRestaurantRepository
	hub         *ws.Hub
	notifier    ports.Notifier
	publisher   ports.OrderEventPublisher
	scheduler   *scheduler.Scheduler
	logger      *slog.Logger

	closePublisher func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		restaurants: restaurantrepo.NewGormRestaurantRepository(gormDB),
		hub:         ws.NewHub(logger),
		logger:      logger,
	}
	root.notifier = notifications.NewFanout(root.hub, logger)

	if config.KafkaHost == "" {
		root.publisher = kafka.NewNopOrderEventPublisher()
	} else {
		publisher, err := kafka.NewOrderEventPublisher(
			strings.Split(config.KafkaHost, ","), config.KafkaOrderChangedTopic, logger)
		if err != nil {
			return CompositionRoot{}, err
		}
		root.publisher = publisher
		root.closePublisher = publisher.Close
	}

	changer := root.CreateChangeOrderStatusCommandHandler()
	root.scheduler = scheduler.New(root.uowFactory, &changer, scheduler.DefaultDelays(), logger)

	return root, nil
}

// Close releases resources held by long-lived components: armed scheduler
// timers and the Kafka producer connection.
func (c *CompositionRoot) Close() error {
	c.scheduler.Stop()
	if c.closePublisher != nil {
		return c.closePublisher()
	}
	return nil
}

// Scheduler returns the lifecycle scheduler for the sweep job and the
// startup recovery sweep.
func (c *CompositionRoot) Scheduler() *scheduler.Scheduler {
	return c.scheduler
}

// Hub returns the websocket hub for the connection handler.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

// RestaurantRepository returns the catalog repository for the read-only
// restaurant endpoints.
func (c *CompositionRoot) RestaurantRepository() ports.RestaurantRepository {
	return c.restaurants
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(
		f, c.restaurants, c.notifier, c.publisher, c.scheduler, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(
		f, c.restaurants, c.notifier, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.RemoveOrderUoWFactory = FuncRemoveOrderUoWFactory(func() commands.RemoveOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f, c.scheduler, c.logger)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorDashboardQueryHandler() queries.GetVendorDashboardQueryHandler {
	return queries.NewGetVendorDashboardQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRemoveOrderUoWFactory func() commands.RemoveOrderUoW

func (f FuncRemoveOrderUoWFactory) Create() commands.RemoveOrderUoW {
	return f()
}
