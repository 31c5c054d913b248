package browserdump

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type cookieRow struct {
	hostKey        string
	name           string
	value          string
	encryptedValue []byte
	path           string
	created        time.Time
	expires        time.Time
	lastAccessed   time.Time
	secure         bool
	httpOnly       bool
}

// readCookieRows opens the Cookies store for p and returns its raw rows.
// Encrypted values are decrypted with the platform mechanism where possible;
// rows whose value cannot be recovered keep an empty value rather than being
// dropped, so output row counts stay faithful to the store.
func readCookieRows(ctx context.Context, p Profile, timeout time.Duration) ([]cookieRow, []string, error) {
	sc := cookieSchemas[p.Browser]
	storePath := p.cookiesPath()

	db, cleanup, err := openStoreSnapshot(ctx, storePath)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	vendor := vendorForBrowser(p.Browser)
	decrypt, warnings := cookieDecryptor(vendor, p, timeout)
	metaVersion := storeMetaVersion(ctx, db)

	query := strings.Join([]string{
		"SELECT", strings.Join([]string{
			sc.hostKey, sc.name, sc.value, sc.encryptedValue, sc.path,
			sc.created, sc.expires, sc.lastAccessed, sc.secure, sc.httpOnly,
		}, ", "),
		"FROM", sc.table,
	}, " ")

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, warnings, classifyQueryError(err, storePath)
	}
	defer func() { _ = rows.Close() }()

	var out []cookieRow
	for rows.Next() {
		var r cookieRow
		var value sql.NullString
		var encrypted []byte
		var path sql.NullString
		var created, expires, lastAccessed sql.NullInt64
		var secure, httpOnly sql.NullInt64

		if err := rows.Scan(&r.hostKey, &r.name, &value, &encrypted, &path,
			&created, &expires, &lastAccessed, &secure, &httpOnly); err != nil {
			return nil, warnings, classifyQueryError(err, storePath)
		}

		if value.Valid {
			r.value = value.String
		}
		r.encryptedValue = encrypted
		if path.Valid {
			r.path = path.String
		}
		if created.Valid {
			if t, ok := chromiumMicrosToTime(created.Int64); ok {
				r.created = t
			}
		}
		if expires.Valid {
			if t, ok := chromiumMicrosToTime(expires.Int64); ok {
				r.expires = t
			}
		}
		if lastAccessed.Valid {
			if t, ok := chromiumMicrosToTime(lastAccessed.Int64); ok {
				r.lastAccessed = t
			}
		}
		r.secure = secure.Valid && secure.Int64 == 1
		r.httpOnly = httpOnly.Valid && httpOnly.Int64 == 1

		if r.value == "" && len(r.encryptedValue) > 0 && decrypt != nil {
			if plain, ok := decrypt(r.encryptedValue, metaVersion); ok {
				if decoded, ok := decodeCookieValue(plain); ok {
					r.value = decoded
				}
			}
		}

		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, warnings, classifyQueryError(err, storePath)
	}
	return out, warnings, nil
}

// normalizeCookies maps raw rows onto the unified cookie schema, tagging each
// record with its source browser.
func normalizeCookies(b Browser, rows []cookieRow) []CookieEntry {
	out := make([]CookieEntry, 0, len(rows))
	for _, r := range rows {
		path := r.path
		if path == "" {
			path = "/"
		}
		out = append(out, CookieEntry{
			HostKey:      r.hostKey,
			Name:         r.name,
			Value:        r.value,
			Path:         path,
			Created:      r.created,
			Expires:      r.expires,
			LastAccessed: r.lastAccessed,
			Secure:       r.secure,
			HTTPOnly:     r.httpOnly,
			Browser:      b,
		})
	}
	return out
}
