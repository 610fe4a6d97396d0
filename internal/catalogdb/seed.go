package catalogdb

import (
	"fmt"
	"log"
	"time"

	"github.com/korninw/thai-food-finder/internal/catalog"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rows converts the dataset tree into table rows with deterministic ids.
func Rows(provinces []catalog.Province) ([]Province, []District, []Restaurant) {
	var (
		ps []Province
		ds []District
		rs []Restaurant
	)
	for pi, p := range provinces {
		pid := ProvinceID(p.ID)
		ps = append(ps, Province{
			ID:         pid,
			ExternalID: p.ID,
			Name:       p.Name,
			NameEn:     p.NameEn,
			Region:     string(p.Region),
			Desc:       p.Desc,
			Emoji:      p.Emoji,
			SortOrder:  pi,
		})
		for di, d := range p.Districts {
			did := DistrictID(pid, d.ID)
			ds = append(ds, District{
				ID:         did,
				ProvinceID: pid,
				ExternalID: d.ID,
				Name:       d.Name,
				SortOrder:  di,
			})
			for ri, r := range d.Restaurants {
				rs = append(rs, Restaurant{
					ID:          RestaurantID(r.ID),
					DistrictID:  did,
					ExternalID:  r.ID,
					Name:        r.Name,
					Type:        r.Type,
					Rating:      r.Rating,
					Reviews:     r.Reviews,
					Price:       r.Price,
					Address:     r.Address,
					Hours:       r.Hours,
					Tags:        pq.StringArray(r.Tags),
					Recommended: r.Recommended,
					Emoji:       r.Emoji,
					SortOrder:   ri,
				})
			}
		}
	}
	return ps, ds, rs
}

// Seed upserts the dataset in one transaction. Rows are keyed by their
// derived ids, so seeding the same file twice updates in place. With wipe,
// existing rows are truncated first so entries removed from the file go away.
func Seed(d *gorm.DB, cat *catalog.Catalog, wipe bool) error {
	start := time.Now()
	ps, ds, rs := Rows(cat.Provinces())

	err := d.Transaction(func(tx *gorm.DB) error {
		if wipe {
			if err := wipeDirectory(tx); err != nil {
				return fmt.Errorf("wipe directory: %w", err)
			}
		}
		upsert := func() *gorm.DB { return tx.Clauses(clause.OnConflict{UpdateAll: true}) }
		if len(ps) > 0 {
			if err := upsert().Create(&ps).Error; err != nil {
				return fmt.Errorf("upsert provinces: %w", err)
			}
		}
		if len(ds) > 0 {
			if err := upsert().Create(&ds).Error; err != nil {
				return fmt.Errorf("upsert districts: %w", err)
			}
		}
		if len(rs) > 0 {
			if err := upsert().CreateInBatches(&rs, 200).Error; err != nil {
				return fmt.Errorf("upsert restaurants: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[catalogdb] seeded %d provinces, %d districts, %d restaurants in %dms",
		len(ps), len(ds), len(rs), time.Since(start).Milliseconds())
	return nil
}

func wipeDirectory(tx *gorm.DB) error {
	return tx.Exec(`
		TRUNCATE TABLE
			directory.restaurants,
			directory.districts,
			directory.provinces
		CASCADE;
	`).Error
}
