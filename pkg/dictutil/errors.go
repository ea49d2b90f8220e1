package dictutil

import "errors"

// ErrMalformedPair is returned when a serialized item has no key/value separator.
var ErrMalformedPair = errors.New("malformed key/value pair")
