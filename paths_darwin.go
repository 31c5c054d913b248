//go:build darwin && !ios

package browserdump

import (
	"os"
	"path/filepath"
)

func userDataDirs(b Browser) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(home, "Library", "Application Support")

	switch b {
	case BrowserChrome:
		return []string{filepath.Join(base, "Google", "Chrome")}
	case BrowserEdge:
		return []string{filepath.Join(base, "Microsoft Edge")}
	default:
		return nil
	}
}
