package fleet

import "errors"

var (
	// ErrNotFound is returned when no bus matches the requested number or
	// position.
	ErrNotFound = errors.New("bus not found")
	// ErrDuplicateCode is returned when a code collides case-insensitively
	// with another record.
	ErrDuplicateCode = errors.New("bus code already exists")
	// ErrDuplicateNumber is returned when a bus number collides with
	// another record.
	ErrDuplicateNumber = errors.New("bus number already exists")
)
