package catalog

import "errors"

var (
	// ErrNotFound marks lookups where an identifier or name matches nothing
	// in scope.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous marks prefix lookups that match more than one record.
	// The caller must retry with a longer prefix.
	ErrAmbiguous = errors.New("ambiguous prefix")
	// ErrAlreadyExists marks duplicate shelf names or, under the
	// skip-duplicates policy, a book whose fields match an existing record.
	ErrAlreadyExists = errors.New("already exists")
	// ErrBadQuery marks malformed search predicates.
	ErrBadQuery = errors.New("bad query")
	// ErrReferentialViolation marks writes the database rejected for
	// referencing a missing row. Resolution happens before every write, so
	// hitting this indicates the store raced with another invocation.
	ErrReferentialViolation = errors.New("referential violation")
)
