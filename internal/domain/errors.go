package domain

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width, length or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidTerrainType indicates a terrain code outside 1-8.
	ErrInvalidTerrainType = errors.New("invalid terrain type")

	// ErrInvalidCoordinateRange indicates an east or north value outside
	// [CoordinateMin, CoordinateMax].
	ErrInvalidCoordinateRange = errors.New("coordinate out of range")

	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrDuplicateDescriptor indicates a movement with the descriptor already exists.
	ErrDuplicateDescriptor = errors.New("duplicate descriptor")

	// ErrNotFound indicates no movement exists for the descriptor.
	ErrNotFound = errors.New("movement not found")

	// ErrStorage wraps any failure reported by the backing store.
	ErrStorage = errors.New("storage failure")

	// ErrMalformedImportRow marks an import row that was skipped.
	ErrMalformedImportRow = errors.New("malformed import row")

	// ErrSourceNotFound indicates the import file does not exist.
	ErrSourceNotFound = errors.New("import source not found")

	// ErrNothingToReport is returned when a report is requested for an empty store.
	ErrNothingToReport = errors.New("no earth movements recorded, nothing to report")
)
