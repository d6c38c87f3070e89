package platform

import (
	"context"
	"database/sql"
	"io/fs"
	"os"
	"strings"
	"testing"

	_ "github.com/lib/pq"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	if ups == 0 || ups != downs {
		t.Errorf("expected matching up/down migrations, got %d up and %d down", ups, downs)
	}

	data, err := fs.ReadFile(migrationsFS, "migrations/0001_analyses.up.sql")
	if err != nil {
		t.Fatalf("read first migration: %v", err)
	}
	if !strings.Contains(string(data), "CREATE TABLE IF NOT EXISTS analyses") {
		t.Error("first migration should create the analyses table")
	}
}

func TestSchemaVersionAfterMigrate(t *testing.T) {
	dsn := os.Getenv("RESUMATE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("RESUMATE_TEST_DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	version, dirty, err := SchemaVersion(context.Background(), db)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version < 1 || dirty {
		t.Errorf("SchemaVersion = %d dirty=%v, want at least 1 and clean", version, dirty)
	}
}
