package catalog

import "errors"

var (
	// ErrNotFound is returned by lookups on an unknown province, district or
	// restaurant id. Callers treat it as a no-op.
	ErrNotFound = errors.New("not found")

	ErrUnknownRegion       = errors.New("unknown region")
	ErrDuplicateRestaurant = errors.New("duplicate restaurant id")
	ErrDuplicateProvince   = errors.New("duplicate province id")
	ErrDuplicateDistrict   = errors.New("duplicate district id")
)
