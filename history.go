package browserdump

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

type historyRow struct {
	url        string
	title      string
	visitCount int64
	lastVisit  time.Time
}

// readHistoryRows opens the History store for p and returns its raw rows,
// with timestamps already converted to UTC.
func readHistoryRows(ctx context.Context, p Profile) ([]historyRow, error) {
	sc := historySchemas[p.Browser]
	storePath := p.historyPath()

	db, cleanup, err := openStoreSnapshot(ctx, storePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	query := strings.Join([]string{
		"SELECT", strings.Join([]string{sc.url, sc.title, sc.visitCount, sc.lastVisit}, ", "),
		"FROM", sc.table,
	}, " ")

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyQueryError(err, storePath)
	}
	defer func() { _ = rows.Close() }()

	var out []historyRow
	for rows.Next() {
		var r historyRow
		var title sql.NullString
		var visits sql.NullInt64
		var lastVisit sql.NullInt64

		if err := rows.Scan(&r.url, &title, &visits, &lastVisit); err != nil {
			return nil, classifyQueryError(err, storePath)
		}
		if title.Valid {
			r.title = title.String
		}
		if visits.Valid {
			r.visitCount = visits.Int64
		}
		if lastVisit.Valid {
			if t, ok := chromiumMicrosToTime(lastVisit.Int64); ok {
				r.lastVisit = t
			}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyQueryError(err, storePath)
	}
	return out, nil
}

// normalizeHistory maps raw rows onto the unified history schema, tagging
// each record with its source browser. Pure renaming: no filtering, no
// deduplication, read order preserved.
func normalizeHistory(b Browser, rows []historyRow) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoryEntry{
			URL:        r.url,
			Title:      r.title,
			VisitCount: r.visitCount,
			LastVisit:  r.lastVisit,
			Browser:    b,
		})
	}
	return out
}
