// Package service implements the business operations of the panel on top of
// an injected storage.Store.
package service

import "errors"

// Business errors surfaced to the web layer. Controllers map these onto
// HTTP status codes; anything else becomes a generic 500.
var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrAlreadyApproved      = errors.New("already approved")
	ErrNotFound             = errors.New("not found")
)
