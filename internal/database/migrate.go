package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Migrations are plain SQL files written to be re-runnable (IF NOT EXISTS),
// applied in lexical order on every start.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationNames returns the embedded migration files in apply order.
func MigrationNames() ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies every embedded migration and returns the names applied.
func Migrate(ctx context.Context, db DBTX) ([]string, error) {
	names, err := MigrationNames()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(sqlBytes)); err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return names, nil
}
