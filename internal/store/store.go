package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultNationality marks domestic athletes; anything else is sticky once
// set (a foreign athlete never silently becomes domestic again).
const DefaultNationality = "NOR"

// Store wraps the results database.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the results database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database dir: %w", err)
		}
	}
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening results database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the schema, applies additive column migrations, purges known
// junk from earlier ingestion passes and installs the NULL-safe natural
// unique index (after deduping rows the plain UNIQUE constraint let through).
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	migrations := []struct{ table, column, ddl string }{
		{"athletes", "nationality", "ALTER TABLE athletes ADD COLUMN nationality TEXT NOT NULL DEFAULT 'NOR'"},
		{"results", "source_type", "ALTER TABLE results ADD COLUMN source_type TEXT"},
		{"results", "wa_error", "ALTER TABLE results ADD COLUMN wa_error TEXT"},
	}
	for _, m := range migrations {
		ok, err := s.hasColumn(m.table, m.column)
		if err != nil {
			return err
		}
		if !ok {
			if _, err := s.db.Exec(m.ddl); err != nil {
				return fmt.Errorf("adding %s.%s: %w", m.table, m.column, err)
			}
		}
	}

	// Junk sections (non-event tables) ingested by earlier parser versions.
	purges := []struct{ action, sql string }{
		{"purge-empty-event-results", `DELETE FROM results WHERE event_id IN (SELECT id FROM events WHERE TRIM(name_no) = '')`},
		{"purge-empty-events", `DELETE FROM events WHERE TRIM(name_no) = ''`},
		{"purge-untyped-results", `DELETE FROM results WHERE source_type IS NULL OR TRIM(source_type) = ''`},
		{"purge-placeholder-athletes", `DELETE FROM athletes WHERE TRIM(name) = '' AND id NOT IN (SELECT DISTINCT athlete_id FROM results)`},
	}
	for _, p := range purges {
		res, err := s.db.Exec(p.sql)
		if err != nil {
			return fmt.Errorf("%s: %w", p.action, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			if err := s.logChange(p.action, "", n); err != nil {
				return err
			}
		}
	}

	if _, err := s.db.Exec(naturalDedup); err != nil {
		return fmt.Errorf("deduping natural key: %w", err)
	}
	if _, err := s.db.Exec(naturalUniqueIndex); err != nil {
		return fmt.Errorf("creating natural unique index: %w", err)
	}
	return nil
}

func (s *Store) hasColumn(table, column string) (bool, error) {
	rows, err := s.db.Queryx(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("reading %s columns: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (s *Store) logChange(action, detail string, rows int64) error {
	_, err := s.db.Exec(
		`INSERT INTO change_log (action, detail, rows_affected) VALUES (?, ?, ?)`,
		action, detail, rows)
	if err != nil {
		return fmt.Errorf("writing change log: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction; sync runs commit once per page.
func (s *Store) WithTx(fn func(*Tx) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(&Tx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// FillClubGaps back-fills missing club references on results from the most
// recently scraped result of the same athlete and season that has one.
func (s *Store) FillClubGaps() (int64, error) {
	res, err := s.db.Exec(`
		UPDATE results SET club_id = (
			SELECT r2.club_id FROM results r2
			WHERE r2.athlete_id = results.athlete_id
			  AND r2.season = results.season
			  AND r2.club_id IS NOT NULL
			ORDER BY r2.scraped_at DESC, r2.id DESC
			LIMIT 1
		)
		WHERE club_id IS NULL
		  AND EXISTS (
			SELECT 1 FROM results r2
			WHERE r2.athlete_id = results.athlete_id
			  AND r2.season = results.season
			  AND r2.club_id IS NOT NULL
		)`)
	if err != nil {
		return 0, fmt.Errorf("filling club gaps: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		if err := s.logChange("fill-club-gaps", "", n); err != nil {
			return n, err
		}
	}
	return n, nil
}
