package store

import "errors"

// ErrNotFound is returned by record stores when a document does not exist
// in the caller's partition.
var ErrNotFound = errors.New("record not found")
