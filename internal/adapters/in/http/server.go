package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/client"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (string, error)
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	ActiveOrdersHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetActiveOrdersQuery,
		) ([]queries.GetActiveOrdersQueryResponse, error)
	}

	OrderSummaryHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetOrderSummaryQuery,
		) (queries.GetOrderSummaryQueryResponse, error)
	}

	StatisticsHandler interface {
		Handle(ctx context.Context, query queries.GetStatisticsQuery) (queries.GetStatisticsQueryResponse, error)
	}
)

// Server handles the HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        PlaceOrderHandler
	changeOrderStatusHandler ChangeOrderStatusHandler

	// Query handlers
	activeOrdersHandler ActiveOrdersHandler
	orderSummaryHandler OrderSummaryHandler
	statisticsHandler   StatisticsHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler PlaceOrderHandler,
	changeOrderStatusHandler ChangeOrderStatusHandler,
	activeOrdersHandler ActiveOrdersHandler,
	orderSummaryHandler OrderSummaryHandler,
	statisticsHandler StatisticsHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		activeOrdersHandler:      activeOrdersHandler,
		orderSummaryHandler:      orderSummaryHandler,
		statisticsHandler:        statisticsHandler,
		logger:                   logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - lists base products and add-ons.
func (s *Server) GetMenu(ctx echo.Context) error {
	items := product.Menu()
	addOns := product.AddOns()

	response := Menu{
		Items:  make([]MenuItem, len(items)),
		AddOns: make([]AddOn, len(addOns)),
	}
	for i, item := range items {
		response.Items[i] = MenuItem{
			Code:  item.Code,
			Name:  item.Product.Name(),
			Price: item.Product.Price().String(),
		}
	}
	for i, a := range addOns {
		response.AddOns[i] = AddOn{
			Code:      a.Code(),
			Label:     a.Label(),
			Surcharge: a.Surcharge().String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places and confirms a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	c, clientErr := client.NewClient(newOrder.Client.Name, newOrder.Client.Phone, newOrder.Client.Address)
	r, restaurantErr := restaurant.NewRestaurant(
		newOrder.Restaurant.ID,
		newOrder.Restaurant.Name,
		newOrder.Restaurant.Description,
	)
	if err := errors.Join(clientErr, restaurantErr); err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	selections := make([]commands.ItemSelection, len(newOrder.Items))
	for i, item := range newOrder.Items {
		selections[i] = commands.ItemSelection{MenuCode: item.MenuCode, AddOnCodes: item.AddOns}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, c, r, selections)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	confirmation, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderConfirmation{
		ID:           orderID.String(),
		Confirmation: confirmation,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists orders not delivered yet.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.activeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:             o.ID.String(),
			ClientName:     o.ClientName,
			RestaurantName: o.RestaurantName,
			Status:         o.Status.String(),
			ItemCount:      o.ItemCount,
			Total:          o.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id} - returns the order summary.
func (s *Server) GetOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	summary, err := s.orderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	items := make([]OrderItem, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = OrderItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, OrderSummary{
		ID:             summary.ID.String(),
		ClientName:     summary.ClientName,
		RestaurantName: summary.RestaurantName,
		Status:         summary.Status,
		Items:          items,
		Total:          summary.Total.String(),
		Summary:        summary.Summary,
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/{id}/status - moves an order to a new status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID kernel.UUID) error {
	var change StatusChange
	if err := ctx.Bind(&change); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(change.Status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status change")
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change order status")
	}

	return ctx.JSON(http.StatusOK, StatusChange{Status: status.String()})
}

// GetStatistics handles GET /api/v1/statistics - reports delivered-order figures.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.statisticsHandler.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve statistics")
	}

	return ctx.JSON(http.StatusOK, Statistics{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue.String(),
		AveragePerOrder: stats.AveragePerOrder.String(),
		Report:          stats.Report,
	})
}

// fail writes the error response for err. Client errors carry err's text;
// anything unexpected is logged and answered with message.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	} else {
		message = err.Error()
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, order.ErrTransitionIsNotAllowed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
