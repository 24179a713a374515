package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const entryColumns = "id, title, cover_url, type, year, rating, episode_count, description, watched, owned, added_at"

// mapSQLiteError converts SQLite errors to package error values.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check the message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "CHECK constraint failed") ||
		strings.Contains(errStr, "NOT NULL constraint failed") {
		return ErrConstraint
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	e := &Entry{}
	if err := row.Scan(&e.ID, &e.Title, &e.CoverURL, &e.Type, &e.Year, &e.Rating,
		&e.EpisodeCount, &e.Description, &e.Watched, &e.OwnedByCurrentUser, &e.AddedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func addEntry(q querier, strict bool, n *NewEntry) (*Entry, error) {
	if err := Validate(n, strict); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &Entry{
		Title:              normalizeTitle(n.Title),
		CoverURL:           n.CoverURL,
		Type:               n.Type,
		Year:               n.Year,
		Rating:             n.Rating,
		EpisodeCount:       n.EpisodeCount,
		Description:        n.Description,
		OwnedByCurrentUser: n.OwnedByCurrentUser,
		AddedAt:            now,
	}

	result, err := q.Exec(`
		INSERT INTO entries (title, cover_url, type, year, rating, episode_count, description, watched, owned, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.CoverURL, e.Type, e.Year, e.Rating, e.EpisodeCount, e.Description, false, e.OwnedByCurrentUser, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	e.ID = id
	return e, nil
}

// AddEntry validates and inserts a new entry.
// The store assigns a fresh ID and Watched starts false.
func (s *Store) AddEntry(n *NewEntry) (*Entry, error) { return addEntry(s.db, s.strict, n) }

// AddEntry inserts a new entry within a transaction.
func (t *Tx) AddEntry(n *NewEntry) (*Entry, error) { return addEntry(t.tx, t.strict, n) }

func getEntry(q querier, id int64) (*Entry, error) {
	e, err := scanEntry(q.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, mapSQLiteError(err))
	}
	return e, nil
}

// GetEntry retrieves an entry by ID.
// Returns ErrNotFound if the entry does not exist.
func (s *Store) GetEntry(id int64) (*Entry, error) { return getEntry(s.db, id) }

// GetEntry retrieves an entry by ID within a transaction.
func (t *Tx) GetEntry(id int64) (*Entry, error) { return getEntry(t.tx, id) }

func listEntries(q querier, f EntryFilter) ([]*Entry, error) {
	var conditions []string
	var args []any

	if f.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, *f.Type)
	}
	if f.Watched != nil {
		conditions = append(conditions, "watched = ?")
		args = append(args, *f.Watched)
	}
	if f.Owned != nil {
		conditions = append(conditions, "owned = ?")
		args = append(args, *f.Owned)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := q.Query("SELECT "+entryColumns+" FROM entries"+whereClause+" ORDER BY id", args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return results, nil
}

// ListEntries returns entries matching the filter in insertion (ID) order.
func (s *Store) ListEntries(f EntryFilter) ([]*Entry, error) { return listEntries(s.db, f) }

// ListEntries returns entries matching the filter within a transaction.
func (t *Tx) ListEntries(f EntryFilter) ([]*Entry, error) { return listEntries(t.tx, f) }

func toggleWatched(q querier, id int64) (bool, error) {
	result, err := q.Exec("UPDATE entries SET watched = NOT watched WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("toggle watched %d: %w", id, mapSQLiteError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

// ToggleWatched flips the watched flag of one entry. It reports whether an
// entry was changed; a missing ID is not an error.
func (s *Store) ToggleWatched(id int64) (bool, error) { return toggleWatched(s.db, id) }

// ToggleWatched flips the watched flag within a transaction.
func (t *Tx) ToggleWatched(id int64) (bool, error) { return toggleWatched(t.tx, id) }

func countEntries(q querier) (int, error) {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// CountEntries returns the number of entries in the catalog.
func (s *Store) CountEntries() (int, error) { return countEntries(s.db) }

// CountEntries returns the number of entries within a transaction.
func (t *Tx) CountEntries() (int, error) { return countEntries(t.tx) }
