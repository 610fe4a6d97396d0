package catalog

import (
	"fmt"
	"strings"
)

// Region is the coarse geographic grouping of a province.
type Region string

const (
	RegionAll       Region = "all"
	RegionNorth     Region = "north"
	RegionNortheast Region = "northeast"
	RegionCentral   Region = "central"
	RegionEast      Region = "east"
	RegionWest      Region = "west"
	RegionSouth     Region = "south"
)

var regionNames = map[Region]string{
	RegionAll:       "ทั้งหมด",
	RegionNorth:     "ภาคเหนือ",
	RegionNortheast: "ภาคตะวันออกเฉียงเหนือ",
	RegionCentral:   "ภาคกลาง",
	RegionEast:      "ภาคตะวันออก",
	RegionWest:      "ภาคตะวันตก",
	RegionSouth:     "ภาคใต้",
}

// Regions lists the selectable regions in display order, "all" first.
var Regions = []Region{
	RegionAll, RegionNorth, RegionNortheast, RegionCentral, RegionEast, RegionWest, RegionSouth,
}

// ParseRegion accepts a region tag or "all". An empty string means "all".
func ParseRegion(s string) (Region, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RegionAll, nil
	}
	r := Region(s)
	if _, ok := regionNames[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, s)
	}
	return r, nil
}

// Valid reports whether r is a concrete region tag or the "all" sentinel.
func (r Region) Valid() bool {
	_, ok := regionNames[r]
	return ok
}

// DisplayName returns the Thai label used on province cards and region buttons.
func (r Region) DisplayName() string {
	return regionNames[r]
}
