package history

import (
	"fmt"

	hinderrors "thoreinstein.com/hindsight/pkg/errors"
)

// migration is one schema change. Migrations run in declaration order, each
// in its own transaction; applied names are recorded in the migrations table
// and PRAGMA user_version tracks how many have run.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "0001_history_fts",
		sql: `
			CREATE TABLE history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp INTEGER NOT NULL,
				command TEXT NOT NULL,
				UNIQUE (timestamp, command) ON CONFLICT REPLACE
			);

			CREATE VIRTUAL TABLE history_fts USING fts5(
				command,
				content='history',
				content_rowid='id'
			);

			CREATE TRIGGER history_fts_insert AFTER INSERT ON history BEGIN
				INSERT INTO history_fts (rowid, command)
				VALUES (new.id, new.command);
			END;

			CREATE TRIGGER history_fts_delete AFTER DELETE ON history BEGIN
				INSERT INTO history_fts (history_fts, rowid, command)
				VALUES ('delete', old.id, old.command);
			END;

			CREATE TRIGGER history_fts_update AFTER UPDATE ON history BEGIN
				INSERT INTO history_fts (history_fts, rowid, command)
				VALUES ('delete', old.id, old.command);
				INSERT INTO history_fts (rowid, command)
				VALUES (new.id, new.command);
			END;

			CREATE VIRTUAL TABLE history_terms USING fts5vocab(history_fts, 'row');
		`,
	},
	{
		name: "0002_import_runs",
		sql: `
			CREATE TABLE import_runs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id TEXT NOT NULL,
				source TEXT NOT NULL,
				started_at INTEGER NOT NULL,
				imported INTEGER NOT NULL,
				skipped INTEGER NOT NULL
			);
		`,
	},
}

// migrate brings the database schema up to date. Already-applied migrations
// are skipped, so re-opening an up-to-date database is a no-op.
func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS migrations (name TEXT NOT NULL UNIQUE)`)
	if err != nil {
		return hinderrors.NewStorageErrorWithCause("migrate", s.path,
			"cannot create migrations table", err)
	}

	applied := make(map[string]bool)
	rows, err := s.db.Query(`SELECT name FROM migrations`)
	if err != nil {
		return hinderrors.NewStorageErrorWithCause("migrate", s.path,
			"cannot read applied migrations", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				"cannot read applied migrations", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return hinderrors.NewStorageErrorWithCause("migrate", s.path,
			"cannot read applied migrations", err)
	}
	rows.Close()

	for i, m := range migrations {
		if applied[m.name] {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				"cannot begin transaction", err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				fmt.Sprintf("migration %s failed", m.name), err)
		}
		if _, err := tx.Exec(`INSERT INTO migrations (name) VALUES (?)`, m.name); err != nil {
			tx.Rollback()
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				fmt.Sprintf("cannot record migration %s", m.name), err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				fmt.Sprintf("cannot bump schema version for %s", m.name), err)
		}
		if err := tx.Commit(); err != nil {
			return hinderrors.NewStorageErrorWithCause("migrate", s.path,
				fmt.Sprintf("cannot commit migration %s", m.name), err)
		}
	}
	return nil
}
