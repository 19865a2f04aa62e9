package sqlite_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdullahzahoor404/telco-scanner/internal/repository/sqlite"
	_ "github.com/mattn/go-sqlite3"
)

func TestNewRepository_Success(t *testing.T) {
	ctx := t.Context()

	dbPath := filepath.Join(t.TempDir(), "testdb.sqlite")
	defer os.Remove(dbPath) // clean up after test

	// No-op logger
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := sqlite.NewRepository(ctx, logger, dbPath)
	if err != nil {
		t.Fatalf("expected no error from NewRepository, got: %v", err)
	}
	defer repo.Close()

	if repo == nil {
		t.Fatal("expected repository to be non-nil")
	}
}

func TestNewRepository_InvalidPath(t *testing.T) {
	ctx := t.Context()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Try creating a repo with an invalid file path
	_, err := sqlite.NewRepository(ctx, logger, "/invalid/path/to/db.sqlite")
	if err == nil {
		t.Fatal("expected error due to invalid path, got nil")
	}
}

func TestRepository_Close(t *testing.T) {
	ctx := t.Context()

	dbPath := filepath.Join(t.TempDir(), "testdb.sqlite")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := sqlite.NewRepository(ctx, logger, dbPath)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}

	if err = repo.Close(); err != nil {
		t.Fatalf("expected no error on close, got: %v", err)
	}
}
