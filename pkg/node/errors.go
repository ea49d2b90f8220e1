package node

import (
	"errors"
	"fmt"
)

var (
	// ErrChildrenNotAllowed is returned when adding a child to an element that cannot hold children.
	ErrChildrenNotAllowed = errors.New("element does not allow children")

	// ErrCycle is returned when a node would become its own descendant.
	ErrCycle = errors.New("node cannot be added to its own subtree")

	// ErrNilNode is returned when a nil node is passed to a tree operation.
	ErrNilNode = errors.New("nil node")

	// ErrNotChild is returned when a node is expected to be a child but is not.
	ErrNotChild = errors.New("node is not a child")

	// ErrNoParent is returned by operations that require the node to be attached.
	ErrNoParent = errors.New("node has no parent")

	// ErrUnknownProperty is returned when a property name is not declared for an element.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownAccessor is returned when a delegated property path names a missing sub-element.
	ErrUnknownAccessor = errors.New("unknown accessor")

	// ErrMalformedStyle is returned for style declarations without a name/value separator.
	ErrMalformedStyle = errors.New("malformed style declaration")
)

// PropertyError reports a failure while applying a named property.
type PropertyError struct {
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q: %v", e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
