// Package http exposes the REST surface of the order service and maps
// domain errors onto status codes: invalid input to 400, unknown objects
// to 404, everything else to 500.
package http

import (
	"errors"
	"net/http"

	"delify/internal/core/application/usecases/commands"
	"delify/internal/core/application/usecases/queries"
	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/kernel"
	"delify/internal/core/domain/model/order"
	"delify/internal/core/ports"
	"delify/internal/notifications"
	"delify/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler  commands.PlaceOrderCommandHandler
	changeOrderHandler commands.ChangeOrderStatusCommandHandler
	removeOrderHandler commands.RemoveOrderCommandHandler

	getUserOrdersHandler      queries.GetUserOrdersQueryHandler
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getVendorDashboardHandler queries.GetVendorDashboardQueryHandler

	restaurants ports.RestaurantRepository
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderHandler commands.ChangeOrderStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getVendorDashboardHandler queries.GetVendorDashboardQueryHandler,
	restaurants ports.RestaurantRepository,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		changeOrderHandler:        changeOrderHandler,
		removeOrderHandler:        removeOrderHandler,
		getUserOrdersHandler:      getUserOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getVendorDashboardHandler: getVendorDashboardHandler,
		restaurants:               restaurants,
	}
}

// RegisterRoutes attaches all REST routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetAllOrders)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.DELETE("/orders/:id", s.RemoveOrder)
	v1.GET("/orders/user/:uid", s.GetUserOrders)
	v1.GET("/vendors/:uid/dashboard", s.GetVendorDashboard)

	v1.GET("/restaurants", s.GetRestaurants)
	v1.GET("/restaurants/:id", s.GetRestaurant)
	v1.GET("/restaurants/:id/menu", s.GetRestaurantMenu)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type placeOrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type placeOrderRequest struct {
	UserID          string           `json:"userId"`
	RestaurantID    string           `json:"restaurantId"`
	Items           []placeOrderItem `json:"items"`
	TotalAmount     float64          `json:"totalAmount"`
	DeliveryAddress string           `json:"deliveryAddress"`
}

type updateOrderStatusRequest struct {
	Status                *string `json:"status"`
	EstimatedDeliveryTime *string `json:"estimatedDeliveryTime"`
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(line.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+idErr.Error())
		}

		item, itemErr := order.NewItem(menuItemID, line.Quantity, line.Price)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.UserID, restaurantID, items, req.TotalAmount, req.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, notifications.NewOrderPayload(placed, nil, nil, nil))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - applies a status
// and/or delivery-estimate change.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.ParseStatus(*req.Status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+parseErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, req.EstimatedDeliveryTime)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.changeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, notifications.NewOrderPayload(updated, nil, nil, nil))
}

// RemoveOrder handles DELETE /api/v1/orders/:id - administrative hard delete.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/orders/user/:uid - a customer's order
// history. Unknown uids yield an empty list.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(ctx.Param("uid"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetAllOrders handles GET /api/v1/orders - the operator order list.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetVendorDashboard handles GET /api/v1/vendors/:uid/dashboard - a
// restaurant owner's restaurant, orders, and stats.
func (s *Server) GetVendorDashboard(ctx echo.Context) error {
	query, err := queries.NewGetVendorDashboardQuery(ctx.Param("uid"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	dashboard, err := s.getVendorDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboard)
}

type restaurantResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Cuisine      []string `json:"cuisine"`
	Address      string   `json:"address"`
	Rating       float64  `json:"rating"`
	DeliveryTime string   `json:"deliveryTime"`
	PriceForTwo  float64  `json:"priceForTwo"`
}

type menuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
}

// GetRestaurants handles GET /api/v1/restaurants - the full catalog.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	restaurants, err := s.restaurants.GetAll(ctx.Request().Context())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, toRestaurantResponse(r))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /api/v1/restaurants/:id - one restaurant card.
func (s *Server) GetRestaurant(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	restaurant, err := s.restaurants.Get(ctx.Request().Context(), id)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu - the dishes of
// one restaurant.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	items, err := s.restaurants.MenuItems(ctx.Request().Context(), id)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponse{
			ID:          item.ID().String(),
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Image:       item.Image(),
			Category:    item.Category(),
			IsAvailable: item.IsAvailable(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func toRestaurantResponse(r *catalog.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:           r.ID().String(),
		Name:         r.Name(),
		Description:  r.Description(),
		Image:        r.Image(),
		Cuisine:      r.Cuisine(),
		Address:      r.Address(),
		Rating:       r.Rating(),
		DeliveryTime: r.DeliveryTime(),
		PriceForTwo:  r.PriceForTwo(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
