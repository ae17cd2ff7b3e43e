// Package pkgerror defines shared error types used across the application.
//
// It helps keep error handling consistent by providing a structured Error type
// that carries a message, type, code and optional per-field details, which can
// be mapped to HTTP status codes at the edge (handlers).
package pkgerror
