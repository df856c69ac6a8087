package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) order.Address {
	t.Helper()
	a, err := order.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
	require.NoError(t, err)
	return a
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	a, err := order.NewItem(kernel.NewUUID(), "mug", 10.00, 2, "")
	require.NoError(t, err)
	b, err := order.NewItem(kernel.NewUUID(), "plate", 20.00, 1, "blue")
	require.NoError(t, err)
	return []order.Item{a, b}
}

// totals matching testItems with express shipping.
func testTotals() order.Totals {
	return order.Totals{Subtotal: 40.00, ShippingCost: 15.99, Tax: 2.80, Total: 58.79}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), testItems(t),
		testAddress(t), testAddress(t),
		order.CreditCard, order.Express, testTotals(), "leave at door",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_pending_payment", func(t *testing.T) {
		// When
		o := newTestOrder(t)

		// Then
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Empty(t, o.TrackingNumber())
		assert.Equal(t, "leave at door", o.Notes())
		assert.Len(t, o.Items(), 2)
		assert.InDelta(t, 58.79, o.TotalAmount(), 0.001)
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			testAddress(t), testAddress(t),
			order.CreditCard, order.Express, order.Totals{}, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_subtotal_that_does_not_match_items", func(t *testing.T) {
		totals := testTotals()
		totals.Subtotal = 99.00

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t),
			testAddress(t), testAddress(t),
			order.CreditCard, order.Express, totals, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_total_that_does_not_add_up", func(t *testing.T) {
		totals := testTotals()
		totals.Total = 40.00

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t),
			testAddress(t), testAddress(t),
			order.CreditCard, order.Express, totals, "",
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_methods_and_addresses", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t),
			order.Address{}, testAddress(t),
			order.PaymentMethod("barter"), order.Express, testTotals(), "",
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_is_not_constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_the_happy_path", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Processing))
		require.NoError(t, o.ChangeStatus(order.Shipped))
		require.NoError(t, o.ChangeStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejects_disallowed_transition_and_keeps_status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Delivered)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancelling_twice_fails_the_second_time", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		err := o.ChangeStatus(order.Cancelled)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_RecordPayment(t *testing.T) {
	t.Run("paid_while_pending_advances_to_processing", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RecordPayment(order.Paid))

		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("paid_after_processing_does_not_move_status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Processing))
		require.NoError(t, o.ChangeStatus(order.Shipped))

		require.NoError(t, o.RecordPayment(order.Paid))

		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("failed_payment_leaves_order_pending", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.RecordPayment(order.Failed))

		assert.Equal(t, order.Failed, o.PaymentStatus())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_invalid_payment_status", func(t *testing.T) {
		o := newTestOrder(t)
		require.Error(t, o.RecordPayment(order.PaymentStatusUnknown))
	})
}

func TestOrder_CanDelete(t *testing.T) {
	t.Run("pending_order_can_be_deleted", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.CanDelete())
	})

	t.Run("non_pending_order_cannot_be_deleted", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Processing))

		require.ErrorIs(t, o.CanDelete(), errs.ErrInvalidState)
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := newTestOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	assert.NoError(t, o.Items()[0].Validate())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_statuses_and_tracking_number", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t),
			testAddress(t), testAddress(t),
			order.PayPal, order.Express, testTotals(),
			order.Shipped, order.Paid, "TRACK-42", "",
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, "TRACK-42", o.TrackingNumber())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t),
			testAddress(t), testAddress(t),
			order.PayPal, order.Express, testTotals(),
			order.StatusUnknown, order.Paid, "", "",
		)
		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects_quantity_below_one", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "mug", 10.00, 0, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_missing_name_snapshot", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 10.00, 1, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("keeps_variant", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "mug", 10.00, 1, "large")
		require.NoError(t, err)
		assert.Equal(t, "large", item.Variant())
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("state_is_optional", func(t *testing.T) {
		_, err := order.NewAddress("1 Main St", "Berlin", "", "10115", "DE")
		require.NoError(t, err)
	})

	t.Run("required_fields", func(t *testing.T) {
		testCases := []struct {
			name    string
			street  string
			city    string
			postal  string
			country string
		}{
			{"missing street", "", "Berlin", "10115", "DE"},
			{"missing city", "1 Main St", "", "10115", "DE"},
			{"missing postal code", "1 Main St", "Berlin", "", "DE"},
			{"missing country", "1 Main St", "Berlin", "10115", ""},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewAddress(tc.street, tc.city, "", tc.postal, tc.country)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}
