// Package migrations holds the versioned schema applied by cmd/migrate.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var FS embed.FS

// Files lists the migration files in apply order.
func Files() ([]string, error) {
	return fs.Glob(FS, "*.sql")
}
