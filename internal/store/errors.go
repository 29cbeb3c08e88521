package store

import "errors"

// Sentinel errors returned by store operations. Handlers map these onto HTTP
// status codes with errors.Is.
var (
	// ErrNotFound covers missing users, rooms and beds.
	ErrNotFound = errors.New("record not found")

	// ErrBedOccupied is returned by Book on an already-occupied bed and by
	// RemoveBed when the highest-index bed has a tenant.
	ErrBedOccupied = errors.New("bed is occupied")

	// ErrBedVacant is returned by tenant mutations on an empty bed.
	ErrBedVacant = errors.New("bed is not occupied")

	// ErrNoBeds is returned by RemoveBed on a room with zero beds.
	ErrNoBeds = errors.New("room has no beds")
)
