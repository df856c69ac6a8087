package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves the product catalog from the database.
//
// Example:
//
//	handler := NewGetProductsQueryHandler(db)
//	products, err := handler.Handle(ctx, NewGetProductsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, p := range products {
//	    fmt.Printf("%s: %d available\n", p.Name, p.Available)
//	}
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query. Products are sorted by name for stable output.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			quantity,
			reserved
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.Price, &resp.Quantity, &resp.Reserved)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID

		resp.Available = resp.Quantity - resp.Reserved
		if resp.Available < 0 {
			resp.Available = 0
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
