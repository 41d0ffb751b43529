package cmd

import (
	"io"
	"log/slog"
	"sync"

	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	out        io.Writer
	logger     *slog.Logger

	statisticsOnce sync.Once
	statistics     *services.Statistics
}

// NewCompositionRoot wires the application around gormDB.
// Notifications are written to out.
func NewCompositionRoot(config Config, gormDB *gorm.DB, out io.Writer, logger *slog.Logger) *CompositionRoot {
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		out:        out,
		logger:     logger,
	}
}

// Statistics returns the process-wide delivered-order aggregator.
func (c *CompositionRoot) Statistics() *services.Statistics {
	c.statisticsOnce.Do(func() {
		c.statistics = services.NewStatistics()
	})
	return c.statistics
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.observerFactory(), c.orderOptions()...)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWFactory(),
		c.observerFactory(),
		c.Statistics(),
		c.orderOptions()...,
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateGetOrderSummaryQueryHandler reads orders through a fresh unit of work
// repository outside a transaction.
func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.Statistics())
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderSummaryQueryHandler(),
		c.CreateGetStatisticsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.Statistics(), c.config.StatisticsReportSchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) observerFactory() commands.ObserverFactory {
	return FuncObserverFactory(func(o *order.Order) []order.Observer {
		return services.StandardNotifiers(c.out, o)
	})
}

func (c *CompositionRoot) orderOptions() []order.Option {
	if c.config.StrictTransitions {
		return []order.Option{order.WithStrictTransitions()}
	}
	return nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncObserverFactory func(o *order.Order) []order.Observer

func (f FuncObserverFactory) Observers(o *order.Order) []order.Observer {
	return f(o)
}
