// Package http exposes the ordering use cases over a JSON API.
// It coordinates between HTTP handlers and application use cases and owns the
// mapping from domain errors to status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server wires the HTTP surface to the command and query handlers.
type Server struct {
	// Command handlers
	registerUserHandler  commands.RegisterUserCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	addOrderItemHandler  commands.AddOrderItemCommandHandler
	payOrderHandler      commands.PayOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	shipOrderHandler     commands.ShipOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getAllUsersHandler     queries.GetAllUsersQueryHandler
	getUserHandler         queries.GetUserQueryHandler
	getUserByEmailHandler  queries.GetUserByEmailQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllUsersHandler queries.GetAllUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getUserByEmailHandler queries.GetUserByEmailQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		createOrderHandler:     createOrderHandler,
		addOrderItemHandler:    addOrderItemHandler,
		payOrderHandler:        payOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		shipOrderHandler:       shipOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		getAllUsersHandler:     getAllUsersHandler,
		getUserHandler:         getUserHandler,
		getUserByEmailHandler:  getUserByEmailHandler,
		getOrderHandler:        getOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		logger:                 logger,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.GET("/users", s.GetUsers)
	api.GET("/users/by-email", s.GetUserByEmail)
	api.GET("/users/:id", s.GetUser)
	api.GET("/users/:id/orders", s.GetUserOrders)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
}

// RegisterUser handles POST /api/v1/users - registers a new user.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.Name)
	if err != nil {
		return s.domainError(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(created))
}

// GetUsers handles GET /api/v1/users - retrieves all users.
func (s *Server) GetUsers(ctx echo.Context) error {
	query := queries.NewGetAllUsersQuery()

	users, err := s.getAllUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:        u.ID.String(),
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:id - retrieves one user.
func (s *Server) GetUser(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return s.domainError(ctx, err)
	}

	u, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// GetUserByEmail handles GET /api/v1/users/by-email?email=... - exact-match lookup.
func (s *Server) GetUserByEmail(ctx echo.Context) error {
	query, err := queries.NewGetUserByEmailQuery(ctx.QueryParam("email"))
	if err != nil {
		return s.domainError(ctx, err)
	}

	u, err := s.getUserByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// GetUserOrders handles GET /api/v1/users/:id/orders - lists one user's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetOrdersQuery(id)
	if err != nil {
		return s.domainError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders - lists every order in the system.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - opens a new order for a user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), userID)
	if err != nil {
		return s.domainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one full order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.domainError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - lists the
// order's transitions in chronological order.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return s.domainError(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]StatusChangeResponse, len(history))
	for i, change := range history {
		response[i] = StatusChangeResponse{
			Status:    change.Status.String(),
			ChangedAt: change.ChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOrderItem handles POST /api/v1/orders/:id/items - adds a line item.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Price)
	if err != nil {
		return s.domainError(ctx, order.NewInvalidAmountError(req.Price))
	}

	cmd, err := commands.NewAddOrderItemCommand(id, req.ProductName, kernel.NewMoney(amount), req.Quantity)
	if err != nil {
		return s.domainError(ctx, err)
	}

	updated, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// PayOrder handles POST /api/v1/orders/:id/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewPayOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCancelOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewShipOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transition(ctx, func(id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCompleteOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) transition(ctx echo.Context, apply func(kernel.UUID) (*order.Order, error)) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	updated, err := apply(id)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain and application errors to HTTP status codes:
// absence is 404, state and uniqueness conflicts are 409, rejected input is
// 422, anything unrecognized is 500.
func (s *Server) domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, order.ErrOrderAlreadyPaid),
		errors.Is(err, order.ErrOrderCancelled),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		code = http.StatusConflict
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrInvalidAmount),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
