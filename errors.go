package browserdump

import "errors"

var (
	// ErrProfileNotFound means the browser's profile directory does not exist
	// (browser not installed or never run). Fatal for that browser only.
	ErrProfileNotFound = errors.New("browserdump: profile not found")

	// ErrArtifactMissing means the expected store file is absent. Recoverable:
	// the pipeline continues with an empty dataset for that pair.
	ErrArtifactMissing = errors.New("browserdump: artifact missing")

	// ErrStoreUnreadable means the store file exists but could not be opened
	// or queried. Fatal for that browser/artifact pair.
	ErrStoreUnreadable = errors.New("browserdump: store unreadable")

	// ErrSchemaMismatch means an expected table or column is absent, which
	// signals browser-version drift rather than bad data. Fatal for the pair
	// and surfaced so the schema mapping can be updated.
	ErrSchemaMismatch = errors.New("browserdump: schema mismatch")

	// ErrWriteFailed means an output file could not be written. Fatal for the
	// whole run.
	ErrWriteFailed = errors.New("browserdump: write failed")
)
