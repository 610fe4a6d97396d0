// Package catalog holds the read-only province → district → restaurant tree and
// the id lookups over it.
package catalog

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

type restaurantPos struct {
	province, district, restaurant int
}

// Catalog is an immutable, indexed view of the dataset. It is safe for
// concurrent readers; callers must not modify the slices it returns.
type Catalog struct {
	provinces    []Province
	byProvince   map[string]int
	byRestaurant map[int]restaurantPos
	fingerprint  string
}

// New indexes provinces and validates id uniqueness. The slice is retained
// as-is; provinces keep their dataset order.
func New(provinces []Province) (*Catalog, error) {
	c := &Catalog{
		provinces:    provinces,
		byProvince:   make(map[string]int, len(provinces)),
		byRestaurant: make(map[int]restaurantPos),
	}

	for pi, p := range provinces {
		if _, dup := c.byProvince[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProvince, p.ID)
		}
		if p.Region == RegionAll || !p.Region.Valid() {
			return nil, fmt.Errorf("province %s: %w: %q", p.ID, ErrUnknownRegion, p.Region)
		}
		c.byProvince[p.ID] = pi

		seenDistricts := make(map[string]struct{}, len(p.Districts))
		for di, d := range p.Districts {
			if _, dup := seenDistricts[d.ID]; dup {
				return nil, fmt.Errorf("province %s: %w: %s", p.ID, ErrDuplicateDistrict, d.ID)
			}
			seenDistricts[d.ID] = struct{}{}

			for ri, r := range d.Restaurants {
				if prev, dup := c.byRestaurant[r.ID]; dup {
					return nil, fmt.Errorf("%w: %d (in %s and %s)", ErrDuplicateRestaurant,
						r.ID, provinces[prev.province].ID, p.ID)
				}
				c.byRestaurant[r.ID] = restaurantPos{pi, di, ri}
			}
		}
	}

	fp, err := fingerprint(provinces)
	if err != nil {
		return nil, err
	}
	c.fingerprint = fp
	return c, nil
}

// Provinces returns every province in dataset order, including those without
// districts.
func (c *Catalog) Provinces() []Province {
	return c.provinces
}

// Featured returns the provinces that already have district data, in dataset
// order. This is the set shown on the home grid.
func (c *Catalog) Featured() []Province {
	out := make([]Province, 0, len(c.provinces))
	for _, p := range c.provinces {
		if p.HasData() {
			out = append(out, p)
		}
	}
	return out
}

// FindProvince looks up a province by id.
func (c *Catalog) FindProvince(id string) (*Province, error) {
	i, ok := c.byProvince[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c.provinces[i], nil
}

// FindRestaurant looks up a restaurant by its dataset-wide id and returns it
// with its owning district and province.
func (c *Catalog) FindRestaurant(id int) (RestaurantRef, error) {
	pos, ok := c.byRestaurant[id]
	if !ok {
		return RestaurantRef{}, ErrNotFound
	}
	p := &c.provinces[pos.province]
	d := &p.Districts[pos.district]
	return RestaurantRef{
		Restaurant: &d.Restaurants[pos.restaurant],
		District:   d,
		Province:   p,
	}, nil
}

// Stats counts the featured provinces and their districts and restaurants.
// Provinces without districts are left out of every total.
func (c *Catalog) Stats() Stats {
	var s Stats
	for _, p := range c.provinces {
		if !p.HasData() {
			continue
		}
		s.Provinces++
		s.Districts += len(p.Districts)
		s.Restaurants += p.RestaurantCount()
	}
	return s
}

// Fingerprint is a hex digest of the dataset content. Two catalogs built from
// equal data share a fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

func fingerprint(provinces []Province) (string, error) {
	b, err := json.Marshal(provinces)
	if err != nil {
		return "", fmt.Errorf("fingerprint dataset: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:16]), nil
}
