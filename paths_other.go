//go:build !windows && !darwin && !linux

package browserdump

func userDataDirs(_ Browser) []string { return nil }
