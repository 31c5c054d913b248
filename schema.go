package browserdump

// Raw store layouts, one mapping per (browser, artifact kind). Chrome and
// Edge currently share the Chromium layout, but each browser keeps its own
// entry so version drift in one of them is a one-line change here.

type historySchema struct {
	table      string
	url        string
	title      string
	visitCount string
	lastVisit  string
}

type cookieSchema struct {
	table          string
	hostKey        string
	name           string
	value          string
	encryptedValue string
	path           string
	created        string
	expires        string
	lastAccessed   string
	secure         string
	httpOnly       string
}

var chromiumHistorySchema = historySchema{
	table:      "urls",
	url:        "url",
	title:      "title",
	visitCount: "visit_count",
	lastVisit:  "last_visit_time",
}

var chromiumCookieSchema = cookieSchema{
	table:          "cookies",
	hostKey:        "host_key",
	name:           "name",
	value:          "value",
	encryptedValue: "encrypted_value",
	path:           "path",
	created:        "creation_utc",
	expires:        "expires_utc",
	lastAccessed:   "last_access_utc",
	secure:         "is_secure",
	httpOnly:       "is_httponly",
}

var historySchemas = map[Browser]historySchema{
	BrowserChrome: chromiumHistorySchema,
	BrowserEdge:   chromiumHistorySchema,
}

var cookieSchemas = map[Browser]cookieSchema{
	BrowserChrome: chromiumCookieSchema,
	BrowserEdge:   chromiumCookieSchema,
}
