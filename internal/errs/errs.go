// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP boundary is expressed as an
// *HTTPError so clients always receive the same JSON error shape,
// optionally carrying field-level validation details.
package errs
