package database

import (
	"strings"
	"testing"
)

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatalf("MigrationNames() error = %v", err)
	}

	want := []string{
		"migrations/0001_stores.sql",
		"migrations/0002_catalog_items.sql",
		"migrations/0003_audit_log.sql",
	}
	if len(names) != len(want) {
		t.Fatalf("MigrationNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMigrationsAreRerunnable(t *testing.T) {
	names, err := MigrationNames()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		for _, stmt := range strings.Split(string(sqlBytes), ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if !strings.Contains(stmt, "IF NOT EXISTS") {
				t.Errorf("%s: statement is not re-runnable: %.60s", name, stmt)
			}
		}
	}
}

func TestCatalogItemsReferenceStores(t *testing.T) {
	sqlBytes, err := migrationsFS.ReadFile("migrations/0002_catalog_items.sql")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(sqlBytes), "REFERENCES stores (id) ON DELETE CASCADE") {
		t.Error("catalog_items.store_id should reference stores with cascade")
	}
}
