package domain

import "errors"

// ErrNotFound is returned by stores when a row does not exist. It is an
// expected outcome, distinct from a connectivity or query failure.
var ErrNotFound = errors.New("not found")

// ErrItemNotIndexed is returned when a recommendation query targets an item
// with no stored embedding. Surfaced to clients as "no recommendations
// available", not as a server error.
var ErrItemNotIndexed = errors.New("item has no stored embedding")
