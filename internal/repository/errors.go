package repository

import "errors"

var (
	// ErrNotFound reports that the targeted row (or association)
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName reports a violation of the unique tag name
	// constraint on direct tag creation or rename.
	ErrDuplicateName = errors.New("tag name already exists")
)
