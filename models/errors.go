package models

import "fmt"

// Typed errors returned by services. The HTTP helper maps each type to a
// status code; handlers never inspect error strings.

// ErrorValidation: the request is malformed and the client should fix it.
type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorNotFound: the referenced entity does not exist.
type ErrorNotFound struct {
	Entity string
}

func (e ErrorNotFound) Error() string { return e.Entity + " not found" }

// ErrorUnauthenticated: no token, or a token that failed verification.
// Stale marks the case where the token itself was valid but the user it
// references no longer exists.
type ErrorUnauthenticated struct {
	Message string
	Stale   bool
}

func (e ErrorUnauthenticated) Error() string { return e.Message }

// ErrorForbidden: the caller lacks the named permission token.
type ErrorForbidden struct {
	Permission string
}

func (e ErrorForbidden) Error() string {
	return fmt.Sprintf("user does not have permission: %s", e.Permission)
}

// ErrorOwnership: the caller is neither the resource owner nor an
// admin/superadmin. Kept distinct from ErrorForbidden so callers and tests
// can tell an ownership failure from a missing-permission failure.
type ErrorOwnership struct {
	Resource string
}

func (e ErrorOwnership) Error() string {
	return "not authorized to modify this " + e.Resource
}

// ErrorConflict: a uniqueness constraint was violated.
type ErrorConflict struct {
	Field string
}

func (e ErrorConflict) Error() string { return e.Field + " already exists" }
