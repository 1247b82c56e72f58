// Package errs provides standardized error types for the order lifecycle service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateConflictError: For operations that are not legal in the current order state
//   - InvariantViolationError: For conditions that must be unreachable under correct locking
//   - GatewayError: For failed or timed-out calls to external carrier/channel APIs
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The last three types map one-to-one onto the error taxonomy callers are expected
// to branch on: validation and state-conflict failures are recoverable and carry a
// specific reason, gateway failures leave the operation retryable, and invariant
// violations indicate a bug that must be surfaced, never auto-corrected.
package errs
