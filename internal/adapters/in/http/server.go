// Package http implements the inbound HTTP adapter: an echo server that
// translates API requests into commands and queries, and the core's typed
// errors into HTTP status codes.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	createProductHandler       commands.CreateProductCommandHandler
	restockProductHandler      commands.RestockProductCommandHandler

	// Query handlers
	getOrderHandler    queries.GetOrderQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		createProductHandler:       createProductHandler,
		restockProductHandler:      restockProductHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getProductsHandler:         getProductsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var req servers.CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := kernel.UUIDFromBytes(item.ProductId[:])
		if err != nil {
			return badRequest(ctx, "Invalid product id: "+err.Error())
		}
		variant := ""
		if item.Variant != nil {
			variant = *item.Variant
		}
		items = append(items, commands.ItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
			Variant:   variant,
		})
	}

	shippingAddress, err := addressToDomain(req.ShippingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}
	billingAddress, err := addressToDomain(req.BillingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid billing address: "+err.Error())
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		principal.ID(),
		items,
		shippingAddress,
		billingAddress,
		order.PaymentMethod(req.PaymentMethod),
		order.ShippingMethod(req.ShippingMethod),
		notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	var filters queries.OrderFilters
	if params.Status != nil {
		status, err := order.StatusFromString(*params.Status)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+*params.Status)
		}
		filters.Status = &status
	}
	if params.UserId != nil {
		userID, err := kernel.UUIDFromBytes((*params.UserId)[:])
		if err != nil {
			return badRequest(ctx, "Invalid user id filter")
		}
		filters.UserID = &userID
	}
	filters.CreatedAfter = params.CreatedAfter
	filters.CreatedBefore = params.CreatedBefore

	var page queries.Page
	if params.Page != nil {
		page.Number = *params.Page
	}
	if params.Limit != nil {
		page.Size = *params.Limit
	}

	var sort queries.Sort
	if params.SortBy != nil {
		sort.Field = *params.SortBy
	}
	if params.SortDir != nil {
		sort.Desc = *params.SortDir == "desc"
	}

	query, err := queries.NewGetOrdersQuery(principal, filters, page, sort)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	apiOrders := make([]servers.Order, len(resp.Orders))
	for i, o := range resp.Orders {
		apiOrders[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Orders: apiOrders,
		Total:  resp.Total,
		Page:   query.Page().Number,
		Limit:  query.Page().Size,
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - moves an
// order through its lifecycle. Back-office only.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !principal.IsAdmin() {
		return writeDomainError(ctx, errs.NewForbiddenError("update order status"))
	}

	var req servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	trackingNumber := ""
	if req.TrackingNumber != nil {
		trackingNumber = *req.TrackingNumber
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, trackingNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// UpdatePaymentStatus handles PATCH /api/v1/orders/{orderId}/payment - records
// a payment outcome. Back-office only.
func (s *Server) UpdatePaymentStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !principal.IsAdmin() {
		return writeDomainError(ctx, errs.NewForbiddenError("update payment status"))
	}

	var req servers.UpdatePaymentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+req.PaymentStatus)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, paymentStatus)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - deletes a pending
// order owned by the caller, releasing its reservations.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, principal)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery()

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
			Reserved:    p.Reserved,
			Available:   p.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - adds a catalog entry. Back-office only.
func (s *Server) CreateProduct(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !principal.IsAdmin() {
		return writeDomainError(ctx, errs.NewForbiddenError("create product"))
	}

	var req servers.CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), req.Name, description, req.Price, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromAggregate(created))
}

// RestockProduct handles POST /api/v1/products/{productId}/restock - adds
// stock to a product. Back-office only.
func (s *Server) RestockProduct(ctx echo.Context, productId openapi_types.UUID) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthenticated(ctx)
	}
	if !principal.IsAdmin() {
		return writeDomainError(ctx, errs.NewForbiddenError("restock product"))
	}

	var req servers.RestockProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewRestockProductCommand(productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	restocked, err := s.restockProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromAggregate(restocked))
}

func addressToDomain(a servers.Address) (order.Address, error) {
	state := ""
	if a.State != nil {
		state = *a.State
	}
	return order.NewAddress(a.Street, a.City, state, a.PostalCode, a.Country)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing caller identity",
	})
}
