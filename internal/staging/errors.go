package staging

import "errors"

var (
	// ErrNotStaged marks a basename that does not follow the V<digits>_ convention.
	ErrNotStaged = errors.New("not a staged file name")

	// ErrNotFound marks a staged path that does not exist or is not a regular file.
	ErrNotFound = errors.New("staged file not found")
)
