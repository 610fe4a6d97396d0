package query

import (
	"github.com/korninw/thai-food-finder/internal/catalog"
)

// FilterByRegion keeps the provinces tagged with region, preserving order.
// RegionAll returns provinces unchanged. An empty result is ErrEmptyResult.
func FilterByRegion(provinces []catalog.Province, region catalog.Region) ([]catalog.Province, error) {
	if region == catalog.RegionAll {
		if len(provinces) == 0 {
			return nil, ErrEmptyResult
		}
		return provinces, nil
	}

	var out []catalog.Province
	for _, p := range provinces {
		if p.Region == region {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyResult
	}
	return out, nil
}

// FilterRestaurants lists the restaurants of p in scope. An empty districtID
// aggregates every district in order; a non-empty text keeps restaurants whose
// name, type or a tag contains it, ignoring case. An unknown district or no
// match is ErrEmptyResult.
func FilterRestaurants(p *catalog.Province, districtID, text string) ([]catalog.Restaurant, error) {
	var scope []catalog.Restaurant
	if districtID != "" {
		if d, err := p.FindDistrict(districtID); err == nil {
			scope = d.Restaurants
		}
	} else {
		for _, d := range p.Districts {
			scope = append(scope, d.Restaurants...)
		}
	}

	out := make([]catalog.Restaurant, 0, len(scope))
	if text == "" {
		out = append(out, scope...)
	} else {
		m := newMatcher(text)
		for _, r := range scope {
			if m.restaurant(r) {
				out = append(out, r)
			}
		}
	}

	if len(out) == 0 {
		return nil, ErrEmptyResult
	}
	return out, nil
}
