package browserdump

import "time"

// Browser identifies an artifact source.
type Browser string

const (
	// BrowserChrome is Google Chrome.
	BrowserChrome Browser = "chrome"
	// BrowserEdge is Microsoft Edge.
	BrowserEdge Browser = "edge"
)

// DefaultBrowsers returns the fixed extraction order: Chrome, then Edge.
// Combined tables concatenate in this order.
func DefaultBrowsers() []Browser {
	return []Browser{BrowserChrome, BrowserEdge}
}

// ArtifactKind identifies a class of browsing artifact.
type ArtifactKind string

const (
	// ArtifactHistory is the visit history store.
	ArtifactHistory ArtifactKind = "history"
	// ArtifactBookmarks is the bookmarks document.
	ArtifactBookmarks ArtifactKind = "bookmarks"
	// ArtifactCookies is the cookie store.
	ArtifactCookies ArtifactKind = "cookies"
)

// Artifacts returns all artifact kinds in output order.
func Artifacts() []ArtifactKind {
	return []ArtifactKind{ArtifactHistory, ArtifactBookmarks, ArtifactCookies}
}

// HistoryEntry is one row of a browser's visit history.
type HistoryEntry struct {
	URL        string
	Title      string
	VisitCount int64
	LastVisit  time.Time
	Browser    Browser
}

// BookmarkEntry is one node of a browser's bookmark tree. Folder nodes have
// no URL; leaf nodes do. FolderPath is the ancestry from the named root,
// e.g. ["Bookmarks Bar", "Work"].
type BookmarkEntry struct {
	Name       string
	Type       string
	URL        string
	DateAdded  time.Time
	FolderPath []string
	Browser    Browser
}

// CookieEntry is one row of a browser's cookie store. Value is empty when
// the stored value was encrypted and could not be decrypted.
type CookieEntry struct {
	HostKey      string
	Name         string
	Value        string
	Path         string
	Created      time.Time
	Expires      time.Time
	LastAccessed time.Time
	Secure       bool
	HTTPOnly     bool
	Browser      Browser
}

// Options configures a pipeline run.
type Options struct {
	// Browsers to extract from, in order. If empty, DefaultBrowsers() is used.
	Browsers []Browser

	// Profiles overrides per-browser profile selection. The value may be a
	// profile name (e.g. "Default"), a profile directory, or a user data
	// directory.
	Profiles map[Browser]string

	// OutputDir is where CSV files are written. Defaults to ".".
	OutputDir string

	// Delimiter is the output field separator. Defaults to ','.
	Delimiter rune

	// Timeout for OS helper calls (keychain/keyring).
	Timeout time.Duration
}
