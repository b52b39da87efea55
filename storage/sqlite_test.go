package storage

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	got := DSN("tasks.db")
	if !strings.HasPrefix(got, "tasks.db?") {
		t.Errorf("expected DSN to start with the path, got %q", got)
	}
	if !strings.Contains(got, "_journal_mode=WAL") {
		t.Errorf("expected WAL journal mode in DSN, got %q", got)
	}
	if !strings.Contains(got, "_busy_timeout=5000") {
		t.Errorf("expected busy timeout in DSN, got %q", got)
	}
}

func TestOpen_TwoHandlesOnOneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	for i := 0; i < 2; i++ {
		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open() handle %d error = %v", i, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("DB() handle %d error = %v", i, err)
		}
		defer sqlDB.Close()
		if err := sqlDB.Ping(); err != nil {
			t.Fatalf("Ping() handle %d error = %v", i, err)
		}
	}
}
