package browserdump

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Column orders follow entity declaration order. Every table carries the
// browser column so combined files need no schema of their own.

func historyHeader() []string {
	return []string{"url", "title", "visit_count", "last_visit_time", "browser"}
}

func historyRecord(e HistoryEntry) []string {
	return []string{
		e.URL,
		e.Title,
		strconv.FormatInt(e.VisitCount, 10),
		formatCanonical(e.LastVisit),
		browserLabel(e.Browser),
	}
}

func bookmarkHeader() []string {
	return []string{"name", "type", "url", "date_added", "folder_path", "browser"}
}

func bookmarkRecord(e BookmarkEntry) []string {
	return []string{
		e.Name,
		e.Type,
		e.URL,
		formatCanonical(e.DateAdded),
		strings.Join(e.FolderPath, "/"),
		browserLabel(e.Browser),
	}
}

func cookieHeader() []string {
	return []string{
		"host_key", "name", "value", "path",
		"creation_utc", "expires_utc", "last_access_utc",
		"is_secure", "is_httponly", "browser",
	}
}

func cookieRecord(e CookieEntry) []string {
	return []string{
		e.HostKey,
		e.Name,
		e.Value,
		e.Path,
		formatCanonical(e.Created),
		formatCanonical(e.Expires),
		formatCanonical(e.LastAccessed),
		formatBool(e.Secure),
		formatBool(e.HTTPOnly),
		browserLabel(e.Browser),
	}
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func browserLabel(b Browser) string {
	return vendorForBrowser(b).label
}

// writeCSV serializes header + records to path, truncating any existing
// file. Quoting of embedded delimiters, quotes and newlines follows RFC 4180
// via encoding/csv.
func writeCSV(path string, delimiter rune, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, err)
	}

	w := csv.NewWriter(f)
	if delimiter != 0 {
		w.Comma = delimiter
	}

	writeErr := w.Write(header)
	if writeErr == nil {
		writeErr = w.WriteAll(records)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, path, writeErr)
	}
	return nil
}
