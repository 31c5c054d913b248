package browserdump

import "fmt"

type browserVendor struct {
	browser Browser

	// user-visible
	label string

	// "Safe Storage" secret identifier.
	safeStorageService string
	safeStorageAccount string
}

func vendorForBrowser(b Browser) browserVendor {
	switch b {
	case BrowserChrome:
		return browserVendor{browser: b, label: "Chrome", safeStorageService: "Chrome Safe Storage", safeStorageAccount: "Chrome"}
	case BrowserEdge:
		return browserVendor{browser: b, label: "Microsoft Edge", safeStorageService: "Microsoft Edge Safe Storage", safeStorageAccount: "Microsoft Edge"}
	default:
		return browserVendor{browser: b, label: string(b), safeStorageService: fmt.Sprintf("%s Safe Storage", b), safeStorageAccount: string(b)}
	}
}

func envKeySafeStoragePassword(b Browser) string {
	switch b {
	case BrowserChrome:
		return "BROWSERDUMP_CHROME_SAFE_STORAGE_PASSWORD"
	case BrowserEdge:
		return "BROWSERDUMP_EDGE_SAFE_STORAGE_PASSWORD"
	default:
		return "BROWSERDUMP_SAFE_STORAGE_PASSWORD"
	}
}
