package query

import (
	"strings"

	"github.com/korninw/thai-food-finder/internal/catalog"
)

// Category labels for province and district hits. Restaurant hits use the
// restaurant type instead.
const (
	CategoryProvince = "จังหวัด"
	CategoryDistrict = "เขต/อำเภอ"
)

// Hit is one entry of the global search result list.
type Hit struct {
	Emoji    string `json:"emoji"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Action   Action `json:"action"`
}

// SearchAll scans provinces in dataset order. For each province it checks the
// province itself, then each district, then each district's restaurants, so
// the result order is the traversal order and the first hit is the preferred
// one. The full match set is returned; truncation is up to the caller.
func SearchAll(provinces []catalog.Province, text string) ([]Hit, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankQuery
	}

	m := newMatcher(text)
	var hits []Hit
	for _, p := range provinces {
		if m.province(p) {
			hits = append(hits, Hit{
				Emoji:    p.Emoji,
				Label:    p.Name,
				Category: CategoryProvince,
				Action:   OpenProvince(p.ID),
			})
		}
		for _, d := range p.Districts {
			if m.district(d) {
				hits = append(hits, Hit{
					Emoji:    p.Emoji,
					Label:    d.Name + " (" + p.Name + ")",
					Category: CategoryDistrict,
					Action:   OpenProvince(p.ID),
				})
			}
			for _, r := range d.Restaurants {
				if m.restaurant(r) {
					hits = append(hits, Hit{
						Emoji:    r.Emoji,
						Label:    r.Name + " (" + p.Name + ")",
						Category: r.Type,
						Action:   OpenRestaurant(r.ID),
					})
				}
			}
		}
	}

	if len(hits) == 0 {
		return nil, ErrEmptyResult
	}
	return hits, nil
}

// First returns the preferred hit, used by quick-search submit.
func First(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
