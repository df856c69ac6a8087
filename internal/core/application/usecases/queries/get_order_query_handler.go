package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID, principal)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s\n", resp.ID, resp.Status)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order does
// not exist and ForbiddenError when the caller is neither the owner nor an
// admin.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			shipping_street, shipping_city, shipping_state, shipping_postal_code, shipping_country,
			billing_street, billing_city, billing_state, billing_postal_code, billing_country,
			payment_method,
			shipping_method,
			subtotal,
			shipping_cost,
			tax,
			total_amount,
			status,
			payment_status,
			tracking_number,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if !query.Principal().CanAccessOrdersOf(resp.UserID) {
		return OrderResponse{}, errs.NewForbiddenError("view order")
	}

	items, err := loadOrderItems(ctx, h.db, []uuid.UUID{query.OrderID().Bytes()})
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items[query.OrderID().Bytes()]

	return resp, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id, userID    uuid.UUID
		status        int
		paymentStatus int
	)

	err := row.Scan(
		&id,
		&userID,
		&resp.ShippingAddress.Street, &resp.ShippingAddress.City, &resp.ShippingAddress.State,
		&resp.ShippingAddress.PostalCode, &resp.ShippingAddress.Country,
		&resp.BillingAddress.Street, &resp.BillingAddress.City, &resp.BillingAddress.State,
		&resp.BillingAddress.PostalCode, &resp.BillingAddress.Country,
		&resp.PaymentMethod,
		&resp.ShippingMethod,
		&resp.Subtotal,
		&resp.ShippingCost,
		&resp.Tax,
		&resp.TotalAmount,
		&status,
		&paymentStatus,
		&resp.TrackingNumber,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.UserID = ownerID
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
	resp.Items = make([]ItemResponse, 0)

	return resp, nil
}

// loadOrderItems fetches the line items of the given orders in one query,
// keyed by order id and ordered by line number.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]ItemResponse, error) {
	items := make(map[uuid.UUID][]ItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			price,
			quantity,
			variant
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, line_number
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item               ItemResponse
			orderID, productID uuid.UUID
		)

		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Price, &item.Quantity, &item.Variant); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = id

		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
