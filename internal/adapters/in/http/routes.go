package http

import (
	"fmt"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterHandlers mounts the API on e.
// Routes under /api/v1 are validated against doc; /health and /swagger/* are not.
//
// Parameters:
//   - e: echo instance to register routes on
//   - s: server implementing the handlers
//   - doc: API document loaded with LoadOpenAPI
//
// Returns:
//   - error: if the validator or the swagger document cannot be built
func RegisterHandlers(e *echo.Echo, s *Server, doc *openapi3.T) error {
	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	api.GET("/menu", s.GetMenu)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", withOrderID(s.GetOrder))
	api.PUT("/orders/:id/status", withOrderID(s.ChangeOrderStatus))
	api.GET("/statistics", s.GetStatistics)

	return nil
}

// withOrderID binds the {id} path parameter before calling handler.
func withOrderID(handler func(echo.Context, kernel.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var raw string
		err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
			runtime.BindStyledParameterOptions{
				ParamLocation: runtime.ParamLocationPath,
				Explode:       false,
				Required:      true,
			})
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("Invalid format for parameter id: %s", err),
			})
		}

		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("Invalid format for parameter id: %s", err),
			})
		}

		return handler(ctx, orderID)
	}
}
