package repo_errors

import "errors"

var (
	ErrNotFound = errors.New("entity not found")
	ErrConflict = errors.New("entity violates a uniqueness constraint")
)
