package core

import "errors"

var (
	// ErrNotFound is returned when a store or catalog item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoSession is returned when a catalog step is reached without a
	// store created in the same registration.
	ErrNoSession = errors.New("no registration session")
)
