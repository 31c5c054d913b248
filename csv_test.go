package browserdump

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteCSV_QuotesEmbeddedDelimitersAndNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := [][]string{
		{"a,b", "line1\nline2", `has "quotes"`},
	}
	if err := writeCSV(path, ',', []string{"one", "two", "three"}, records); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	got, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 lines got %d", len(got))
	}
	for i, v := range records[0] {
		if got[1][i] != v {
			t.Fatalf("field %d: want %q got %q", i, v, got[1][i])
		}
	}
}

func TestWriteCSV_CustomDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := writeCSV(path, ';', []string{"a", "b"}, [][]string{{"1", "2"}}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "a;b\n") {
		t.Fatalf("unexpected output: %q", raw)
	}
}

func TestWriteCSV_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeCSV(path, ',', []string{"a"}, nil); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "a\n" {
		t.Fatalf("want truncated rewrite, got %q", raw)
	}
}

func TestWriteCSV_WriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")
	err := writeCSV(path, ',', []string{"a"}, nil)
	if err == nil {
		t.Fatal("want write error")
	}
}

func TestCookieRecord_Fields(t *testing.T) {
	e := CookieEntry{
		HostKey:  ".example.com",
		Name:     "sid",
		Value:    "v",
		Path:     "/",
		Created:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Secure:   true,
		HTTPOnly: false,
		Browser:  BrowserEdge,
	}
	got := cookieRecord(e)
	if len(got) != len(cookieHeader()) {
		t.Fatalf("record width %d != header width %d", len(got), len(cookieHeader()))
	}
	if got[4] != "2020-01-01 00:00:00" || got[5] != "" {
		t.Fatalf("timestamp fields wrong: %v", got)
	}
	if got[7] != "1" || got[8] != "0" {
		t.Fatalf("flag fields wrong: %v", got)
	}
	if got[9] != "Microsoft Edge" {
		t.Fatalf("browser field wrong: %v", got)
	}
}

func TestBookmarkRecord_JoinsFolderPath(t *testing.T) {
	e := BookmarkEntry{
		Name:       "Tracker",
		Type:       "url",
		URL:        "https://tracker.example",
		FolderPath: []string{"Bookmarks bar", "Work"},
		Browser:    BrowserChrome,
	}
	got := bookmarkRecord(e)
	if got[4] != "Bookmarks bar/Work" {
		t.Fatalf("folder_path field wrong: %q", got[4])
	}
}
