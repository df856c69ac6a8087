package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	t.Run("creates_customer_principal", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()

		// When
		p, err := kernel.NewPrincipal(id, kernel.RoleCustomer)

		// Then
		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, kernel.RoleCustomer, p.Role())
		assert.False(t, p.IsAdmin())
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		// When
		_, err := kernel.NewPrincipal(kernel.NewUUID(), kernel.Role("superuser"))

		// Then
		require.Error(t, err)
	})

	t.Run("rejects_zero_uuid", func(t *testing.T) {
		// When
		_, err := kernel.NewPrincipal(kernel.UUID{}, kernel.RoleAdmin)

		// Then
		require.Error(t, err)
	})
}

func TestPrincipal_CanAccessOrdersOf(t *testing.T) {
	ownerID := kernel.NewUUID()
	strangerID := kernel.NewUUID()

	t.Run("owner_can_access_own_orders", func(t *testing.T) {
		p, err := kernel.NewPrincipal(ownerID, kernel.RoleCustomer)
		require.NoError(t, err)

		assert.True(t, p.CanAccessOrdersOf(ownerID))
	})

	t.Run("customer_cannot_access_other_orders", func(t *testing.T) {
		p, err := kernel.NewPrincipal(strangerID, kernel.RoleCustomer)
		require.NoError(t, err)

		assert.False(t, p.CanAccessOrdersOf(ownerID))
	})

	t.Run("admin_can_access_any_orders", func(t *testing.T) {
		p, err := kernel.NewPrincipal(strangerID, kernel.RoleAdmin)
		require.NoError(t, err)

		assert.True(t, p.CanAccessOrdersOf(ownerID))
	})
}
