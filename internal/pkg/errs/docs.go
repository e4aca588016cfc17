// Package errs provides the standardized error types shared by the ordering
// service. Every type follows the same shape:
//   - a sentinel error (for example ErrObjectNotFound) used with errors.Is
//   - a struct carrying the details of one failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The inbound adapters classify failures by sentinel only, so domain packages
// are free to declare their own error values on top of these types.
package errs
