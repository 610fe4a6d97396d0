package db

import (
	"strings"

	"gorm.io/gorm"
)

// EnsureSchema creates the named Postgres schema if it does not exist yet.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec("CREATE SCHEMA IF NOT EXISTS " + quoteIdent(schema)).Error
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
