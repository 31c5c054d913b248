package browserdump

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Profile is a resolved browser profile on disk.
type Profile struct {
	Browser Browser

	// UserData is the user data directory (holds "Local State").
	UserData string
	// Dir is the profile directory itself (holds History, Bookmarks, ...).
	Dir string
	// Name is the profile directory base name, e.g. "Default".
	Name string
}

// LocateProfile resolves the profile directory for b. With an empty override
// it probes the platform default locations for the "Default" profile. An
// override may be a profile name, a profile directory, or a user data
// directory. Returns ErrProfileNotFound if nothing resolves.
func LocateProfile(b Browser, override string) (Profile, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return locateFromOverride(b, override)
	}

	for _, root := range userDataDirs(b) {
		dir := filepath.Join(root, "Default")
		if dirExists(dir) {
			return Profile{Browser: b, UserData: root, Dir: dir, Name: "Default"}, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s default profile", ErrProfileNotFound, vendorForBrowser(b).label)
}

func locateFromOverride(b Browser, override string) (Profile, error) {
	// 1) Explicit directory: either a user data dir or a profile dir.
	if dirExists(override) {
		if fileExists(filepath.Join(override, "Local State")) || dirExists(filepath.Join(override, "Default")) {
			dir := filepath.Join(override, "Default")
			if dirExists(dir) {
				return Profile{Browser: b, UserData: override, Dir: dir, Name: "Default"}, nil
			}
			return Profile{}, fmt.Errorf("%w: no Default profile under %q", ErrProfileNotFound, override)
		}
		return Profile{
			Browser:  b,
			UserData: filepath.Dir(override),
			Dir:      override,
			Name:     filepath.Base(override),
		}, nil
	}

	// 2) Treat as a profile name across known roots.
	for _, root := range userDataDirs(b) {
		dir := filepath.Join(root, override)
		if dirExists(dir) {
			return Profile{Browser: b, UserData: root, Dir: dir, Name: override}, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s profile %q", ErrProfileNotFound, vendorForBrowser(b).label, override)
}

func (p Profile) historyPath() string   { return filepath.Join(p.Dir, "History") }
func (p Profile) bookmarksPath() string { return filepath.Join(p.Dir, "Bookmarks") }

// cookiesPath prefers the modern Network subdirectory location and falls back
// to the legacy in-profile path.
func (p Profile) cookiesPath() string {
	candidates := []string{
		filepath.Join(p.Dir, "Network", "Cookies"),
		filepath.Join(p.Dir, "Cookies"),
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return candidates[0]
}
