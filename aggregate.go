package browserdump

// Combined tables concatenate per-browser tables in the fixed order the
// browsers were extracted in (Chrome then Edge). No deduplication, no
// cross-browser sorting: record order inside each slice is read order.

func combineHistory(tables ...[]HistoryEntry) []HistoryEntry {
	var out []HistoryEntry
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

func combineBookmarks(tables ...[]BookmarkEntry) []BookmarkEntry {
	var out []BookmarkEntry
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

func combineCookies(tables ...[]CookieEntry) []CookieEntry {
	var out []CookieEntry
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}
