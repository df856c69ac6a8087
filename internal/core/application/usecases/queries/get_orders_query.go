package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// OrderFilters narrows the order list. Nil fields are not applied.
type OrderFilters struct {
	Status        *order.Status
	UserID        *kernel.UUID
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// Page selects one page of results. Zero values fall back to page 1 with the
// default size.
type Page struct {
	Number int
	Size   int
}

// Sort names the column to order by. Field must be one of "created_at",
// "total_amount" or "status"; empty means newest first.
type Sort struct {
	Field string
	Desc  bool
}

// sortColumns whitelists the sortable columns. The field name is interpolated
// into SQL, so anything outside this map is rejected up front.
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"total_amount": "total_amount",
	"status":       "status",
}

// GetOrdersQuery retrieves a filtered, paginated page of orders. Customers are
// always scoped to their own orders regardless of the filters they pass;
// admins see everything.
type GetOrdersQuery struct {
	principal kernel.Principal
	filters   OrderFilters
	page      Page
	sort      Sort

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order-list query for the given caller.
// Page defaults are applied here so handlers always see sane bounds.
func NewGetOrdersQuery(
	principal kernel.Principal,
	filters OrderFilters,
	page Page,
	sort Sort,
) (GetOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	if filters.Status != nil {
		if err := filters.Status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if filters.UserID != nil {
		if err := filters.UserID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}

	if sort.Field == "" {
		sort.Field = "created_at"
		sort.Desc = true
	}
	if _, ok := sortColumns[sort.Field]; !ok {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sortable field", sort.Field))
	}

	return GetOrdersQuery{
		principal: principal,
		filters:   filters,
		page:      page,
		sort:      sort,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Principal returns the caller identity.
func (q GetOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

// Filters returns the requested filters.
func (q GetOrdersQuery) Filters() OrderFilters {
	return q.filters
}

// Page returns the requested page with defaults applied.
func (q GetOrdersQuery) Page() Page {
	return q.page
}

// Sort returns the requested sort with defaults applied.
func (q GetOrdersQuery) Sort() Sort {
	return q.sort
}

// GetOrdersQueryResponse is one page of orders plus the total match count so
// callers can render pagination.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}
