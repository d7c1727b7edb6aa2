// Package apperror holds the error kinds shared across domain services.
// Messages of these kinds are shown to the user verbatim; the HTTP layer
// maps the kind to a status code.
package apperror

// Validation is a user-correctable input error. No store call was made.
type Validation string

func (v Validation) Error() string { return string(v) }

// Duplicate reports a case-insensitive name collision on an "add new" action.
type Duplicate string

func (d Duplicate) Error() string { return string(d) }
