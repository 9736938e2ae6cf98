// Package errors defines the typed errors shared across galaxycheck.
//
// Parsing and validation failures are represented as concrete error structs
// (ValidationError, InvalidFilenameError, NotFoundError, MalformedDataError)
// so callers can branch on the failure class with errors.As instead of
// matching message strings. The package also carries the exit-code machinery
// used by the CLI layer to translate errors into process exit statuses.
package errors
