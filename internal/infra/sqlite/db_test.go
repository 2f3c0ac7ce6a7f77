package sqlite

import (
	"path/filepath"
	"testing"
)

func TestNewDB_InMemory(t *testing.T) {
	t.Parallel()

	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck

	if err := db.Ping(); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

func TestNewDB_MissingParentDir(t *testing.T) {
	t.Parallel()

	if _, err := NewDB(filepath.Join(t.TempDir(), "missing", "usage.db")); err == nil {
		t.Error("expected error for missing parent directory")
	}
}

func TestMigrateUp_Idempotent(t *testing.T) {
	t.Parallel()

	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first MigrateUp failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second MigrateUp must be a no-op, got: %v", err)
	}

	// The usage_log table must exist after migration.
	if _, err := db.Exec(`INSERT INTO usage_log (id, route, outcome, duration_ms, created_at)
		VALUES ('t1', 'mock', 'ok', 5, datetime('now'))`); err != nil {
		t.Errorf("usage_log not usable after migration: %v", err)
	}
}

func TestVersionFromFilename(t *testing.T) {
	t.Parallel()

	if v, err := versionFromFilename("001_usage_log.up.sql"); err != nil || v != 1 {
		t.Errorf("expected version 1, got %d (%v)", v, err)
	}
	if _, err := versionFromFilename("nounderscore.sql"); err == nil {
		t.Error("expected error for missing prefix")
	}
	if _, err := versionFromFilename("abc_x.up.sql"); err == nil {
		t.Error("expected error for non-numeric prefix")
	}
}
