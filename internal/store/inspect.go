package store

import "fmt"

// SourceTypeCount is one row of the per-source result breakdown.
type SourceTypeCount struct {
	SourceType string `db:"source_type"`
	Seasons    int    `db:"seasons"`
	Rows       int    `db:"rows"`
}

// ResultsBySourceType breaks result rows down by the list family they came
// from.
func (s *Store) ResultsBySourceType() ([]SourceTypeCount, error) {
	var out []SourceTypeCount
	err := s.db.Select(&out, `
		SELECT source_type, COUNT(DISTINCT season) AS seasons, COUNT(*) AS rows
		FROM results GROUP BY source_type ORDER BY source_type`)
	if err != nil {
		return nil, fmt.Errorf("counting results by source type: %w", err)
	}
	return out, nil
}

// NationalityCount is one row of the athlete nationality breakdown.
type NationalityCount struct {
	Nationality string `db:"nationality"`
	Athletes    int    `db:"athletes"`
}

// AthletesByNationality returns athlete counts per nationality, most common
// first.
func (s *Store) AthletesByNationality() ([]NationalityCount, error) {
	var out []NationalityCount
	err := s.db.Select(&out, `
		SELECT nationality, COUNT(*) AS athletes
		FROM athletes GROUP BY nationality ORDER BY athletes DESC, nationality`)
	if err != nil {
		return nil, fmt.Errorf("counting athletes by nationality: %w", err)
	}
	return out, nil
}

// Coverage reports how complete the optional result columns are.
type Coverage struct {
	Results    int `db:"results"`
	WithClub   int `db:"with_club"`
	WithWind   int `db:"with_wind"`
	WithDate   int `db:"with_date"`
	WithPoints int `db:"with_points"`
	WithBirth  int `db:"with_birth"`
}

// ResultCoverage counts results overall and per optional column.
func (s *Store) ResultCoverage() (Coverage, error) {
	var c Coverage
	err := s.db.Get(&c, `
		SELECT
			COUNT(*) AS results,
			COUNT(club_id) AS with_club,
			COUNT(wind) AS with_wind,
			COUNT(NULLIF(result_date, '')) AS with_date,
			COUNT(wa_points) AS with_points,
			COUNT(CASE WHEN a.birth_date IS NOT NULL AND a.birth_date != '' THEN 1 END) AS with_birth
		FROM results r JOIN athletes a ON a.id = r.athlete_id`)
	if err != nil {
		return Coverage{}, fmt.Errorf("computing result coverage: %w", err)
	}
	return c, nil
}

// SourceEntry is one row of the sources catalog.
type SourceEntry struct {
	SourceType   string `db:"source_type"`
	URL          string `db:"url"`
	Season       int    `db:"season"`
	Gender       string `db:"gender"`
	RowCount     int    `db:"row_count"`
	LastSyncedAt string `db:"last_synced_at"`
}

// Sources lists the sources catalog ordered by season and URL.
func (s *Store) Sources() ([]SourceEntry, error) {
	var out []SourceEntry
	err := s.db.Select(&out, `
		SELECT source_type, url, season, gender, row_count, last_synced_at
		FROM sources ORDER BY season, source_type, gender, url`)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	return out, nil
}

// CountResults counts result rows matching an optional WHERE clause. Used by
// tests and the inspector.
func (s *Store) CountResults(where string, args ...any) (int, error) {
	q := "SELECT COUNT(*) FROM results"
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	if err := s.db.Get(&n, q, args...); err != nil {
		return 0, fmt.Errorf("counting results: %w", err)
	}
	return n, nil
}
