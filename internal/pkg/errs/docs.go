// Package errs provides the standardized error types used across the
// logistics backend. Every failure surfaced by the core falls into one of
// three kinds:
//
//   - ObjectNotFoundError: a referenced id or unique lookup key does not
//     resolve to a stored record (transport maps this to 404)
//   - BusinessRuleError and the value validation errors
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError):
//     a domain invariant or field rule was violated (transport maps to 400)
//   - anything else: an unexpected failure (transport maps to 500)
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the details
//   - constructors with and without a cause
//   - Error() formatting and Unwrap() to the sentinel
//
// Validation failures are raised at the point of detection; nothing in this
// package retries or swallows errors.
package errs
