package query

import (
	"cmp"
	"slices"

	"github.com/korninw/thai-food-finder/internal/catalog"
)

// PopularEntry is a recommended restaurant with the province it belongs to.
type PopularEntry struct {
	Restaurant   catalog.Restaurant `json:"restaurant"`
	ProvinceName string             `json:"province_name"`
	ProvinceID   string             `json:"province_id"`
}

// Popular gathers recommended restaurants in traversal order and sorts them by
// rating, then review count, both descending. The sort is stable so remaining
// ties keep traversal order.
func Popular(provinces []catalog.Province) []PopularEntry {
	var out []PopularEntry
	for _, p := range provinces {
		for _, d := range p.Districts {
			for _, r := range d.Restaurants {
				if r.Recommended {
					out = append(out, PopularEntry{Restaurant: r, ProvinceName: p.Name, ProvinceID: p.ID})
				}
			}
		}
	}

	slices.SortStableFunc(out, func(a, b PopularEntry) int {
		if c := cmp.Compare(b.Restaurant.Rating, a.Restaurant.Rating); c != 0 {
			return c
		}
		return cmp.Compare(b.Restaurant.Reviews, a.Restaurant.Reviews)
	})
	return out
}
