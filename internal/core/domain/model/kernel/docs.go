// Package kernel provides core domain primitives for the storefront system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package contains:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Principal: the authenticated caller identity (id + role) supplied by the
//     auth boundary and consulted for ownership checks
//
// All kernel types are value objects: immutable, comparable, and safe for
// concurrent use. Zero values are invalid and must be created through the
// provided constructor functions.
package kernel
