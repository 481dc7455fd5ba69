// Package kv provides the persistent key-value backends the cart store
// writes through.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("kv: key not found")
