package browserdump

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver (pure Go).
)

// openStoreSnapshot copies the store (and WAL sidecars) to a temp dir and
// opens the copy read-only, so a live browser holding a lock can never block
// the read or be corrupted by it.
func openStoreSnapshot(ctx context.Context, storePath string) (*sql.DB, func(), error) {
	if !fileExists(storePath) {
		return nil, nil, fmt.Errorf("%w: %s", ErrArtifactMissing, storePath)
	}

	dir, err := os.MkdirTemp("", "browserdump-store-")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnreadable, err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	target := filepath.Join(dir, filepath.Base(storePath))
	if err := copyFile(storePath, target); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: snapshot %s: %v", ErrStoreUnreadable, storePath, err)
	}

	// If WAL mode is enabled, recent writes may live in sidecars.
	_ = copyFileIfExists(storePath+"-wal", target+"-wal")
	_ = copyFileIfExists(storePath+"-shm", target+"-shm")

	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(target)+"?mode=ro")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("%w: open %s: %v", ErrStoreUnreadable, storePath, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		cleanup()
		return nil, nil, fmt.Errorf("%w: open %s: %v", ErrStoreUnreadable, storePath, err)
	}

	return db, func() {
		_ = db.Close()
		cleanup()
	}, nil
}

// storeMetaVersion reads the Chromium schema version from the meta table.
// Returns 0 when unavailable.
func storeMetaVersion(ctx context.Context, db *sql.DB) int64 {
	if db == nil {
		return 0
	}
	var value string
	if err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'version'`).Scan(&value); err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// classifyQueryError maps "no such table"/"no such column" onto
// ErrSchemaMismatch; anything else is a store-level failure.
func classifyQueryError(err error, storePath string) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
		return fmt.Errorf("%w: %s: %v", ErrSchemaMismatch, storePath, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, storePath, err)
}
