package thedom

import "errors"

var (
	// ErrNoLoader is returned by template operations on an engine without a loader.
	ErrNoLoader = errors.New("no template loader configured")
	// ErrNotWatchable is returned by Watch when the loader cannot watch for changes.
	ErrNotWatchable = errors.New("current loader does not support watching")
)
