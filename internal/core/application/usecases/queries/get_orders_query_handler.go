package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of orders from the database. The
// filter set and pagination are translated into one SQL statement; line items
// for the returned page are fetched in a second query.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order-list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Customers only ever see their own orders; the
// user filter is honored for admins.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilters(query)

	var total int64
	countSQL := "SELECT COUNT(*) FROM orders" + where
	if err := h.db.WithContext(ctx).Raw(countSQL, args...).Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	page := query.Page()
	sort := query.Sort()
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}

	// The column name comes from the whitelist checked at construction time.
	listSQL := fmt.Sprintf(`
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
		FROM orders%s
		ORDER BY %s %s, id
		LIMIT ? OFFSET ?
	`, where, sortColumns[sort.Field], direction)

	args = append(args, page.Size, (page.Number-1)*page.Size)

	rows, err := h.db.WithContext(ctx).Raw(listSQL, args...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID.Bytes())
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, orderIDs)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	for i := range orders {
		if lines, ok := items[orders[i].ID.Bytes()]; ok {
			orders[i].Items = lines
		}
	}

	return GetOrdersQueryResponse{Orders: orders, Total: total}, nil
}

// buildOrderFilters turns the query's scoping and filters into a WHERE clause
// with positional args.
func buildOrderFilters(query GetOrdersQuery) (string, []any) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	filters := query.Filters()

	switch {
	case !query.Principal().IsAdmin():
		conditions = append(conditions, "user_id = ?")
		args = append(args, query.Principal().ID().Bytes())
	case filters.UserID != nil:
		conditions = append(conditions, "user_id = ?")
		args = append(args, filters.UserID.Bytes())
	}

	if filters.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*filters.Status))
	}
	if filters.CreatedAfter != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filters.CreatedAfter)
	}
	if filters.CreatedBefore != nil {
		conditions = append(conditions, "created_at < ?")
		args = append(args, *filters.CreatedBefore)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
