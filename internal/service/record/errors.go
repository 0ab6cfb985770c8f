package record

import "errors"

var (
	ErrRecordNotFound = errors.New("medical record not found")
	ErrPatientMissing = errors.New("patient does not exist")

	// ErrDeleteNoEffect means a delete reported zero rows affected even
	// though the row was found moments earlier. Treated as a storage
	// fault, not a not-found.
	ErrDeleteNoEffect = errors.New("delete affected no rows")
)
