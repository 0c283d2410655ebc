// Package handler is the HTTP entry point after the router: it binds
// and validates request parameters, calls the service layer, and
// writes the JSON response.
package handler
