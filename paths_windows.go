//go:build windows

package browserdump

import (
	"os"
	"path/filepath"
)

func userDataDirs(b Browser) []string {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		return nil
	}
	switch b {
	case BrowserChrome:
		return []string{filepath.Join(local, "Google", "Chrome", "User Data")}
	case BrowserEdge:
		return []string{filepath.Join(local, "Microsoft", "Edge", "User Data")}
	default:
		return nil
	}
}
