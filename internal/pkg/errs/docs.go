// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - InsufficientInventoryError: For when a requested quantity exceeds available stock
//   - ForbiddenError: For when the caller lacks ownership or role
//   - InvalidStateError: For when an operation is not allowed in the current status
//   - ValidationFailedError: For reporting every problem in a request at once
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the HTTP boundary map domain failures to
// transport status codes with errors.Is alone, without inspecting messages.
package errs
