// Package catalogdb stores the directory dataset in Postgres so the server can
// load it from a database instead of a file.
package catalogdb

import (
	"github.com/korninw/thai-food-finder/internal/db"
	"gorm.io/gorm"
)

const Schema = "directory"

// Init ensures the directory schema and tables exist.
func Init(d *gorm.DB) error {
	if err := db.EnsureSchema(d, Schema); err != nil {
		return err
	}
	return d.AutoMigrate(&Province{}, &District{}, &Restaurant{})
}
