package scoring

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// Meta describes a scoring event: which direction is better and how many
// decimals performances are scored at.
type Meta struct {
	Gender      string `db:"gender"`
	Event       string `db:"name"`
	Orientation string `db:"orientation"`
	Precision   int    `db:"precision"`
}

// Score is the outcome of a points lookup. Exact is false when the
// performance fell between table rows and the nearest not-better row was
// used.
type Score struct {
	Points int
	Exact  bool
}

// Calculator is what the sync orchestrators score rows against.
type Calculator interface {
	EventNames(gender record.Gender) (map[string]bool, error)
	EventMeta(gender record.Gender, event string) (*Meta, error)
	PointsFor(gender record.Gender, event, normalized string) (Score, error)
}

// DB reads a standalone scoring database with tables
// events(gender, name, orientation, precision) and
// points(gender, event, performance, points).
type DB struct {
	db *sqlx.DB
}

// Open opens the scoring database. A missing file is an error: without
// scoring tables no sync run can be meaningful, so callers treat this as
// fatal at startup.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("scoring database %s: %w", path, err)
	}
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening scoring database: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// EventNames returns every scoring event code known for a gender.
func (d *DB) EventNames(gender record.Gender) (map[string]bool, error) {
	var names []string
	if err := d.db.Select(&names, `SELECT name FROM events WHERE gender = ?`, string(gender)); err != nil {
		return nil, fmt.Errorf("listing scoring events: %w", err)
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return known, nil
}

// EventMeta returns the metadata for one scoring event, or nil when the
// event is unknown.
func (d *DB) EventMeta(gender record.Gender, event string) (*Meta, error) {
	var m Meta
	err := d.db.Get(&m,
		`SELECT gender, name, orientation, "precision" FROM events WHERE gender = ? AND name = ?`,
		string(gender), event)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading scoring event %s/%s: %w", gender, event, err)
	}
	return &m, nil
}

// PointsFor scores a normalized performance. An exact table hit returns
// Exact=true; otherwise the nearest row that the performance beats is used.
// Performances worse than the whole table score zero points.
func (d *DB) PointsFor(gender record.Gender, event, normalized string) (Score, error) {
	value, ok := perf.ToValue(normalized)
	if !ok {
		return Score{}, fmt.Errorf("unparseable performance %q", normalized)
	}

	meta, err := d.EventMeta(gender, event)
	if err != nil {
		return Score{}, err
	}
	if meta == nil {
		return Score{}, fmt.Errorf("unknown scoring event %s/%s", gender, event)
	}

	var points int
	err = d.db.Get(&points,
		`SELECT points FROM points WHERE gender = ? AND event = ? AND performance = ?`,
		string(gender), event, value)
	if err == nil {
		return Score{Points: points, Exact: true}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Score{}, fmt.Errorf("scoring %s/%s: %w", gender, event, err)
	}

	// No exact row: take the nearest performance the athlete has beaten.
	query := `SELECT points FROM points
		WHERE gender = ? AND event = ? AND performance >= ?
		ORDER BY performance ASC LIMIT 1`
	if meta.Orientation == string(perf.Higher) {
		query = `SELECT points FROM points
			WHERE gender = ? AND event = ? AND performance <= ?
			ORDER BY performance DESC LIMIT 1`
	}
	err = d.db.Get(&points, query, string(gender), event, value)
	if errors.Is(err, sql.ErrNoRows) {
		return Score{Points: 0, Exact: false}, nil
	}
	if err != nil {
		return Score{}, fmt.Errorf("scoring %s/%s: %w", gender, event, err)
	}
	return Score{Points: points, Exact: false}, nil
}
