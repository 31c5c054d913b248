package browserdump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocateProfile_OverrideProfileDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Profile 2")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	p, err := LocateProfile(BrowserChrome, dir)
	if err != nil {
		t.Fatal(err)
	}
	if p.Dir != dir || p.Name != "Profile 2" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.UserData != filepath.Dir(dir) {
		t.Fatalf("unexpected user data dir: %q", p.UserData)
	}
}

func TestLocateProfile_OverrideUserDataDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Default"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Local State"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LocateProfile(BrowserEdge, root)
	if err != nil {
		t.Fatal(err)
	}
	if p.UserData != root || p.Name != "Default" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Dir != filepath.Join(root, "Default") {
		t.Fatalf("unexpected profile dir: %q", p.Dir)
	}
}

func TestLocateProfile_UserDataDirWithoutDefault(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Local State"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LocateProfile(BrowserChrome, root)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound got %v", err)
	}
}

func TestLocateProfile_UnknownOverride(t *testing.T) {
	_, err := LocateProfile(BrowserChrome, filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound got %v", err)
	}
}

func TestProfileArtifactPaths(t *testing.T) {
	p := Profile{Browser: BrowserChrome, Dir: filepath.Join("data", "Default")}
	if got := p.historyPath(); got != filepath.Join("data", "Default", "History") {
		t.Fatalf("history path: %q", got)
	}
	if got := p.bookmarksPath(); got != filepath.Join("data", "Default", "Bookmarks") {
		t.Fatalf("bookmarks path: %q", got)
	}
	// Neither candidate exists: the modern Network location is preferred.
	if got := p.cookiesPath(); got != filepath.Join("data", "Default", "Network", "Cookies") {
		t.Fatalf("cookies path: %q", got)
	}
}
