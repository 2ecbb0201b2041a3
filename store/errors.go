package store

import "errors"

var (
	// ErrorUnknownType is returned when a type name is not registered and
	// dynamic registration is disabled, or when no entry list exists for it.
	ErrorUnknownType = errors.New("unknown type")

	// ErrorUnknownAttribute is returned when an attribute name is not part
	// of the type descriptor.
	ErrorUnknownAttribute = errors.New("unknown attribute")

	// ErrorUnknownID is returned when an id is not present in the entry dict.
	ErrorUnknownID = errors.New("unknown id")

	// ErrorNotFound is returned when an entry is missing from its computed
	// position in the entry list.
	ErrorNotFound = errors.New("entry not found")

	// ErrorIndexOutOfRange is returned when a computed position falls outside
	// the entry list bounds.
	ErrorIndexOutOfRange = errors.New("index out of range")

	// ErrorInconsistentState signals that the entry dict and the entry lists
	// disagree. This is always a bookkeeping bug, never a user error.
	ErrorInconsistentState = errors.New("inconsistent state")

	// ErrorEmptyType is returned when a co-iteration is seeded from a type
	// whose entry list has no entries.
	ErrorEmptyType = errors.New("empty type")
)
