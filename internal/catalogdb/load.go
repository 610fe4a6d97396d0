package catalogdb

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/korninw/thai-food-finder/internal/catalog"
	"gorm.io/gorm"
)

// ErrNotSeeded means the directory tables do not exist yet.
var ErrNotSeeded = errors.New("directory tables missing; run cmd/seed first")

// undefined_table
const pgUndefinedTable = "42P01"

// Load reads the whole dataset in dataset order and indexes it.
func Load(d *gorm.DB) (*catalog.Catalog, error) {
	var rows []Province
	err := d.
		Order("sort_order ASC").
		Preload("Districts", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Districts.Restaurants", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Find(&rows).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
			return nil, ErrNotSeeded
		}
		return nil, fmt.Errorf("load directory: %w", err)
	}
	return catalog.New(Tree(rows))
}

// Tree converts preloaded rows back into the dataset shape.
func Tree(rows []Province) []catalog.Province {
	out := make([]catalog.Province, 0, len(rows))
	for _, p := range rows {
		cp := catalog.Province{
			ID:     p.ExternalID,
			Name:   p.Name,
			NameEn: p.NameEn,
			Region: catalog.Region(p.Region),
			Desc:   p.Desc,
			Emoji:  p.Emoji,
		}
		for _, d := range p.Districts {
			cd := catalog.District{ID: d.ExternalID, Name: d.Name}
			for _, r := range d.Restaurants {
				cd.Restaurants = append(cd.Restaurants, catalog.Restaurant{
					ID:          r.ExternalID,
					Name:        r.Name,
					Type:        r.Type,
					Rating:      r.Rating,
					Reviews:     r.Reviews,
					Price:       r.Price,
					Address:     r.Address,
					Hours:       r.Hours,
					Tags:        []string(r.Tags),
					Recommended: r.Recommended,
					Emoji:       r.Emoji,
				})
			}
			cp.Districts = append(cp.Districts, cd)
		}
		out = append(out, cp)
	}
	return out
}
