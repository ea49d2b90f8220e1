package document

import "errors"

// ErrUnknownDoctype is returned for a doctype that is neither a known name
// nor a declaration.
var ErrUnknownDoctype = errors.New("unknown doctype")
