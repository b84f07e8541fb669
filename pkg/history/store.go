package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// Store wraps the SQLite history database.
//
// Every method opens no transactions beyond what it needs: the tool runs
// once per command, and SQLite's own locking (WAL + busy timeout) covers
// concurrent imports from multiple shell sessions.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the history database at path, creating the file and its
// directory if needed, and applies any pending schema migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, hinderrors.NewStorageErrorWithCause("open", path,
				"cannot create data directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("open", path,
			"cannot open database", err)
	}
	// Pragmas apply per connection; a single connection keeps them in force
	// and matches the tool's one-operation-per-run model.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, hinderrors.NewStorageErrorWithCause("open", path,
				"cannot configure connection", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Insert writes one entry. A duplicate (timestamp, command) pair replaces
// the existing row. The insert commits before returning, so the entry is
// visible to any query that follows.
func (s *Store) Insert(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO history (timestamp, command) VALUES (?, ?)`,
		e.Timestamp.Unix(), e.Command,
	)
	if err != nil {
		return hinderrors.NewStorageErrorWithCause("insert", s.path,
			"cannot insert entry", err)
	}
	return nil
}

// Search passes expression to the full-text index unmodified and returns
// matching entries newest-first. The index engine's verdict on the
// expression is final; a rejected expression surfaces as a QueryError.
// The engine may report a bad expression either when the query starts or
// on the first row step, so both paths wrap as QueryError.
func (s *Store) Search(expression string) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT h.id, h.timestamp, h.command
		  FROM history_fts f
		  JOIN history h ON h.id = f.rowid
		 WHERE history_fts MATCH ?
		 ORDER BY h.timestamp DESC, h.id DESC`,
		expression,
	)
	if err != nil {
		return nil, hinderrors.NewQueryErrorWithCause(expression,
			"index rejected expression", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Command); err != nil {
			return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
				"cannot scan row", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, hinderrors.NewQueryErrorWithCause(expression,
			"index rejected expression", err)
	}
	return entries, nil
}

// Head returns the first n entries by import order.
func (s *Store) Head(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, command FROM history ORDER BY id ASC LIMIT ?`, n)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot list entries", err)
	}
	return scanEntries(rows)
}

// Tail returns the last n entries by import order, oldest of those first,
// so the output reads like the end of the history file.
func (s *Store) Tail(n int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, command
		  FROM (SELECT id, timestamp, command FROM history ORDER BY id DESC LIMIT ?)
		 ORDER BY id ASC`,
		n,
	)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot list entries", err)
	}
	return scanEntries(rows)
}

// Log returns all entries, newest first.
func (s *Store) Log() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, command FROM history ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot list entries", err)
	}
	return scanEntries(rows)
}

// Top returns the n most frequent distinct commands, ties broken by most
// recent occurrence.
func (s *Store) Top(n int) ([]CommandCount, error) {
	rows, err := s.db.Query(`
		SELECT command, COUNT(*) AS frequency
		  FROM history
		 GROUP BY command
		 ORDER BY frequency DESC, MAX(timestamp) DESC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot aggregate commands", err)
	}
	defer rows.Close()

	var counts []CommandCount
	for rows.Next() {
		var c CommandCount
		if err := rows.Scan(&c.Command, &c.Count); err != nil {
			return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
				"cannot scan row", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot read rows", err)
	}
	return counts, nil
}

// RecordImport persists the provenance row for one importer invocation.
func (s *Store) RecordImport(run ImportRun) error {
	_, err := s.db.Exec(`
		INSERT INTO import_runs (run_id, source, started_at, imported, skipped)
		VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Source, run.StartedAt.Unix(), run.Imported, run.Skipped,
	)
	if err != nil {
		return hinderrors.NewStorageErrorWithCause("insert", s.path,
			"cannot record import run", err)
	}
	return nil
}

// LastImport returns the most recent import run, or nil when none exists.
func (s *Store) LastImport() (*ImportRun, error) {
	row := s.db.QueryRow(`
		SELECT run_id, source, started_at, imported, skipped
		  FROM import_runs
		 ORDER BY id DESC
		 LIMIT 1`)

	var run ImportRun
	var startedAt int64
	err := row.Scan(&run.RunID, &run.Source, &startedAt, &run.Imported, &run.Skipped)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot read import runs", err)
	}
	run.StartedAt = time.Unix(startedAt, 0)
	return &run, nil
}

// Stats gathers the database summary: file size, index term counts, command
// counts, last import, and the most frequent commands.
func (s *Store) Stats(frequent int) (*Stats, error) {
	stats := &Stats{}

	if info, err := os.Stat(s.path); err == nil {
		stats.DatabaseSize = info.Size()
	}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COALESCE(SUM(cnt), 0) FROM history_terms`, &stats.Terms},
		{`SELECT COUNT(*) FROM history_terms`, &stats.UniqueTerms},
		{`SELECT COUNT(command) FROM history`, &stats.Commands},
		{`SELECT COUNT(DISTINCT command) FROM history`, &stats.UniqueCommands},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, hinderrors.NewStorageErrorWithCause("query", s.path,
				"cannot gather statistics", err)
		}
	}

	last, err := s.LastImport()
	if err != nil {
		return nil, err
	}
	stats.LastImport = last

	stats.Frequent, err = s.Top(frequent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// SchemaVersion returns the database's PRAGMA user_version.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return 0, hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot read schema version", err)
	}
	return version, nil
}

// SQLiteVersion returns the version of the linked SQLite library.
func (s *Store) SQLiteVersion() (string, error) {
	var version string
	if err := s.db.QueryRow(`SELECT sqlite_version()`).Scan(&version); err != nil {
		return "", hinderrors.NewStorageErrorWithCause("query", s.path,
			"cannot read sqlite version", err)
	}
	return version, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Command); err != nil {
			return nil, hinderrors.NewStorageErrorWithCause("query", "",
				"cannot scan row", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, hinderrors.NewStorageErrorWithCause("query", "",
			"cannot read rows", err)
	}
	return entries, nil
}
