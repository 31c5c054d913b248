package browserdump

import (
	"encoding/json"
	"fmt"
	"os"
)

type bookmarkNode struct {
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	URL       string         `json:"url"`
	DateAdded string         `json:"date_added"`
	Children  []bookmarkNode `json:"children"`
}

type bookmarkDocument struct {
	Roots struct {
		BookmarkBar *bookmarkNode `json:"bookmark_bar"`
		Other       *bookmarkNode `json:"other"`
		Synced      *bookmarkNode `json:"synced"`
	} `json:"roots"`
}

// readBookmarkEntries parses the Bookmarks JSON document for p and walks
// every named root (bookmark bar, other, synced) depth-first, yielding one
// entry per node. Folder nodes have no URL; every node carries the full
// ancestry path of the folders above it.
func readBookmarkEntries(p Profile) ([]BookmarkEntry, error) {
	path := p.bookmarksPath()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, path, err)
	}

	var doc bookmarkDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrStoreUnreadable, path, err)
	}
	if doc.Roots.BookmarkBar == nil && doc.Roots.Other == nil && doc.Roots.Synced == nil {
		// The file can exist but hold no roots object at all.
		return nil, fmt.Errorf("%w: %s: missing bookmark roots", ErrSchemaMismatch, path)
	}

	var out []BookmarkEntry
	for _, root := range []*bookmarkNode{doc.Roots.BookmarkBar, doc.Roots.Other, doc.Roots.Synced} {
		if root == nil {
			continue
		}
		out = walkBookmarks(p.Browser, *root, nil, out)
	}
	return out, nil
}

func walkBookmarks(b Browser, node bookmarkNode, ancestry []string, out []BookmarkEntry) []BookmarkEntry {
	entry := BookmarkEntry{
		Name:       node.Name,
		Type:       node.Type,
		URL:        node.URL,
		FolderPath: append([]string(nil), ancestry...),
		Browser:    b,
	}
	if t, ok := chromiumMicrosFromString(node.DateAdded); ok {
		entry.DateAdded = t
	}
	out = append(out, entry)

	childAncestry := append(append([]string(nil), ancestry...), node.Name)
	for _, child := range node.Children {
		out = walkBookmarks(b, child, childAncestry, out)
	}
	return out
}
