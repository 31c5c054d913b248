package browserdump

import (
	"strconv"
	"strings"
	"time"
)

// Chromium stores times as microseconds since 1601-01-01 UTC (the Windows
// FILETIME epoch), 11644473600 seconds before the Unix epoch.
const chromiumEpochOffsetMicros = int64(11644473600000000)

// canonicalTimeLayout is the single output time format.
const canonicalTimeLayout = "2006-01-02 15:04:05"

// chromiumMicrosToTime converts a raw store timestamp to UTC. A value of 0
// means "never" and yields (zero, false).
func chromiumMicrosToTime(micros int64) (time.Time, bool) {
	if micros <= 0 {
		return time.Time{}, false
	}
	unixMicros := micros - chromiumEpochOffsetMicros
	// Split seconds from the microsecond remainder: a single nanosecond
	// quantity overflows int64 for dates past ~2262, and legacy stores do
	// carry expiries like 9999-12-31.
	return time.Unix(unixMicros/1e6, (unixMicros%1e6)*1000).UTC(), true
}

// chromiumMicrosFromString converts the string-encoded timestamps found in
// the Bookmarks JSON document.
func chromiumMicrosFromString(s string) (time.Time, bool) {
	micros, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return chromiumMicrosToTime(micros)
}

// formatCanonical renders a timestamp for output. The zero value renders as
// an empty field.
func formatCanonical(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(canonicalTimeLayout)
}
