package errors

import "errors"

// Sentinel errors for the application. Services return these (usually
// wrapped with context via fmt.Errorf and %w) and the API layer maps them
// to HTTP status codes in exactly one place with errors.Is().

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed business rule
	// validation. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrNoCredential signifies that neither a direct provider key nor an
	// aggregator key exists for the requested model. The condition is
	// user-actionable (add an API key in settings). Mapped to 422.
	ErrNoCredential = errors.New("no API credential available")

	// ErrUnavailable signifies that a required collaborator (the credential
	// store) could not be reached. The request may succeed on retry.
	// Mapped to 503 Service Unavailable.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUpstream signifies that every eligible provider call failed for a
	// dispatch. Mapped to 502 Bad Gateway.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrInternal signifies an unexpected server-side error. Kept generic to
	// avoid leaking implementation details. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
