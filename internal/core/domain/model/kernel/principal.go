package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Role classifies the authenticated caller for authorization decisions.
// The auth boundary (outside this core) is responsible for establishing it.
type Role string

const (
	// RoleCustomer is a regular storefront user. Customers see only their own orders.
	RoleCustomer Role = "customer"

	// RoleAdmin is a back-office operator. Admins see and manage every order.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// Principal is the authenticated caller identity supplied by the auth
// middleware: a user id plus a role. The core trusts it as given and uses it
// only for ownership and role checks.
//
// Principal is a value object; the zero value is invalid and must be created
// via NewPrincipal.
type Principal struct {
	id   UUID
	role Role
}

// NewPrincipal creates a Principal from an already-authenticated identity.
// Returns an error if the id or role is invalid.
func NewPrincipal(id UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{id: id, role: role}, nil
}

// ID returns the caller's user id.
func (p Principal) ID() UUID {
	return p.id
}

// Role returns the caller's role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the caller is a back-office operator.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// CanAccessOrdersOf reports whether the caller may read or mutate orders owned
// by the given user. Owners and admins pass, everyone else is denied.
func (p Principal) CanAccessOrdersOf(userID UUID) bool {
	return p.IsAdmin() || p.id.IsEqual(userID)
}

// Validate checks that the principal was constructed via NewPrincipal.
func (p Principal) Validate() error {
	if err := p.id.Validate(); err != nil {
		return err
	}
	return p.role.Validate()
}
