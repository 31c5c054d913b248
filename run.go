package browserdump

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Output describes one CSV file produced by a run.
type Output struct {
	Path     string
	Browser  string // "Chrome", "Microsoft Edge", or "Combined"
	Artifact ArtifactKind
	Records  int
}

// Skip describes a (browser, artifact) pair that produced no output.
type Skip struct {
	Browser  Browser
	Artifact ArtifactKind
	Err      error
}

// Summary reports what a run produced and what it skipped.
type Summary struct {
	Outputs  []Output
	Skipped  []Skip
	Warnings []string
}

// HasFailures reports whether any skip was caused by a non-recoverable
// condition (missing profile, unreadable store, schema drift). A missing
// artifact alone is an empty dataset, not a failure.
func (s Summary) HasFailures() bool {
	for _, sk := range s.Skipped {
		if !errors.Is(sk.Err, ErrArtifactMissing) {
			return true
		}
	}
	return false
}

func (s *Summary) addSkip(b Browser, kind ArtifactKind, err error) {
	s.Skipped = append(s.Skipped, Skip{Browser: b, Artifact: kind, Err: err})
}

func (s *Summary) addOutput(path, browser string, kind ArtifactKind, records int) {
	s.Outputs = append(s.Outputs, Output{Path: path, Browser: browser, Artifact: kind, Records: records})
}

func outputPath(opts Options, name string, kind ArtifactKind) string {
	return filepath.Join(opts.OutputDir, fmt.Sprintf("%s_%s.csv", name, kind))
}

// Run drives the whole pipeline: locate each browser's profile, read and
// normalize every artifact, and write per-browser plus combined CSV files.
//
// Failures are isolated per (browser, artifact) pair: a missing profile
// skips that browser only, a missing store is treated as an empty dataset,
// and an unreadable or drifted store skips the pair with a recorded reason.
// Only a write failure, or a run in which no pair yielded readable data,
// aborts with an error.
func Run(ctx context.Context, opts Options) (Summary, error) {
	opts = opts.withDefaults()
	var sum Summary

	profiles := make(map[Browser]Profile, len(opts.Browsers))
	for _, b := range opts.Browsers {
		p, err := LocateProfile(b, opts.Profiles[b])
		if err != nil {
			for _, kind := range Artifacts() {
				sum.addSkip(b, kind, err)
			}
			continue
		}
		profiles[b] = p
	}

	readable := false

	// History.
	var historyTables [][]HistoryEntry
	for _, b := range opts.Browsers {
		p, ok := profiles[b]
		if !ok {
			continue
		}
		rows, err := readHistoryRows(ctx, p)
		if err != nil {
			sum.addSkip(b, ArtifactHistory, err)
			continue
		}
		readable = true
		entries := normalizeHistory(b, rows)
		historyTables = append(historyTables, entries)

		path := outputPath(opts, string(b), ArtifactHistory)
		if err := writeCSV(path, opts.Delimiter, historyHeader(), historyRecords(entries)); err != nil {
			return sum, err
		}
		sum.addOutput(path, browserLabel(b), ArtifactHistory, len(entries))
	}
	if len(historyTables) > 0 {
		combined := combineHistory(historyTables...)
		path := outputPath(opts, "combined", ArtifactHistory)
		if err := writeCSV(path, opts.Delimiter, historyHeader(), historyRecords(combined)); err != nil {
			return sum, err
		}
		sum.addOutput(path, "Combined", ArtifactHistory, len(combined))
	}

	// Bookmarks.
	var bookmarkTables [][]BookmarkEntry
	for _, b := range opts.Browsers {
		p, ok := profiles[b]
		if !ok {
			continue
		}
		entries, err := readBookmarkEntries(p)
		if err != nil {
			sum.addSkip(b, ArtifactBookmarks, err)
			continue
		}
		readable = true
		bookmarkTables = append(bookmarkTables, entries)

		path := outputPath(opts, string(b), ArtifactBookmarks)
		if err := writeCSV(path, opts.Delimiter, bookmarkHeader(), bookmarkRecords(entries)); err != nil {
			return sum, err
		}
		sum.addOutput(path, browserLabel(b), ArtifactBookmarks, len(entries))
	}
	if len(bookmarkTables) > 0 {
		combined := combineBookmarks(bookmarkTables...)
		path := outputPath(opts, "combined", ArtifactBookmarks)
		if err := writeCSV(path, opts.Delimiter, bookmarkHeader(), bookmarkRecords(combined)); err != nil {
			return sum, err
		}
		sum.addOutput(path, "Combined", ArtifactBookmarks, len(combined))
	}

	// Cookies.
	var cookieTables [][]CookieEntry
	for _, b := range opts.Browsers {
		p, ok := profiles[b]
		if !ok {
			continue
		}
		rows, warnings, err := readCookieRows(ctx, p, opts.Timeout)
		sum.Warnings = append(sum.Warnings, warnings...)
		if err != nil {
			sum.addSkip(b, ArtifactCookies, err)
			continue
		}
		readable = true
		entries := normalizeCookies(b, rows)
		cookieTables = append(cookieTables, entries)

		path := outputPath(opts, string(b), ArtifactCookies)
		if err := writeCSV(path, opts.Delimiter, cookieHeader(), cookieRecords(entries)); err != nil {
			return sum, err
		}
		sum.addOutput(path, browserLabel(b), ArtifactCookies, len(entries))
	}
	if len(cookieTables) > 0 {
		combined := combineCookies(cookieTables...)
		path := outputPath(opts, "combined", ArtifactCookies)
		if err := writeCSV(path, opts.Delimiter, cookieHeader(), cookieRecords(combined)); err != nil {
			return sum, err
		}
		sum.addOutput(path, "Combined", ArtifactCookies, len(combined))
	}

	if !readable {
		return sum, fmt.Errorf("browserdump: no readable artifacts in any profile")
	}
	return sum, nil
}

func historyRecords(entries []HistoryEntry) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyRecord(e))
	}
	return out
}

func bookmarkRecords(entries []BookmarkEntry) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, bookmarkRecord(e))
	}
	return out
}

func cookieRecords(entries []CookieEntry) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, cookieRecord(e))
	}
	return out
}
