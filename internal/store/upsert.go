package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// Tx bundles the upserts a sync run performs between page commits.
type Tx struct {
	tx *sqlx.Tx
}

// UpsertAthlete inserts or refreshes an athlete. On conflict the name is only
// upgraded when the incoming one is at least as complete (longer), the birth
// date fills in a NULL but never overwrites, and a non-default nationality
// sticks once recorded.
func (t *Tx) UpsertAthlete(id int64, gender record.Gender, name, birthDate, nationality string) error {
	if nationality == "" {
		nationality = DefaultNationality
	}
	_, err := t.tx.Exec(`
		INSERT INTO athletes (id, gender, name, birth_date, nationality)
		VALUES (?, ?, ?, NULLIF(?, ''), ?)
		ON CONFLICT(id) DO UPDATE SET
			gender=excluded.gender,
			name=CASE
				WHEN LENGTH(TRIM(excluded.name)) >= LENGTH(TRIM(athletes.name)) THEN excluded.name
				ELSE athletes.name
			END,
			birth_date=COALESCE(athletes.birth_date, excluded.birth_date),
			nationality=CASE
				WHEN athletes.nationality != ? THEN athletes.nationality
				ELSE excluded.nationality
			END,
			updated_at=CURRENT_TIMESTAMP`,
		id, string(gender), name, birthDate, nationality, DefaultNationality)
	if err != nil {
		return fmt.Errorf("upserting athlete %d: %w", id, err)
	}
	return nil
}

// GetOrCreateClub returns the club ID for a name, creating it on first
// sight. Empty names yield no club.
func (t *Tx) GetOrCreateClub(name string) (*int64, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}
	_, err := t.tx.Exec(`
		INSERT INTO clubs (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET updated_at=CURRENT_TIMESTAMP`,
		trimmed)
	if err != nil {
		return nil, fmt.Errorf("upserting club %q: %w", trimmed, err)
	}
	var id int64
	if err := t.tx.Get(&id, `SELECT id FROM clubs WHERE name = ?`, trimmed); err != nil {
		return nil, fmt.Errorf("reading club %q: %w", trimmed, err)
	}
	return &id, nil
}

// GetOrCreateEvent returns the event ID for (gender, name). The scoring code
// fills in once known; orientation follows the latest sync.
func (t *Tx) GetOrCreateEvent(gender record.Gender, nameNo, waEvent, orientation string) (int64, error) {
	_, err := t.tx.Exec(`
		INSERT INTO events (gender, name_no, wa_event, orientation)
		VALUES (?, ?, NULLIF(?, ''), ?)
		ON CONFLICT(gender, name_no) DO UPDATE SET
			wa_event=COALESCE(NULLIF(excluded.wa_event, ''), events.wa_event),
			orientation=excluded.orientation,
			updated_at=CURRENT_TIMESTAMP`,
		string(gender), nameNo, waEvent, orientation)
	if err != nil {
		return 0, fmt.Errorf("upserting event %s/%s: %w", gender, nameNo, err)
	}
	var id int64
	if err := t.tx.Get(&id, `SELECT id FROM events WHERE gender = ? AND name_no = ?`, string(gender), nameNo); err != nil {
		return 0, fmt.Errorf("reading event %s/%s: %w", gender, nameNo, err)
	}
	return id, nil
}

// UpsertCompetition records a source-native competition. Descriptive fields
// only fill NULLs; a later page with less detail never erases an earlier one.
func (t *Tx) UpsertCompetition(id int64, name, city, stadium string) error {
	_, err := t.tx.Exec(`
		INSERT INTO competitions (id, name, city, stadium)
		VALUES (?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''))
		ON CONFLICT(id) DO UPDATE SET
			name=COALESCE(competitions.name, excluded.name),
			city=COALESCE(competitions.city, excluded.city),
			stadium=COALESCE(competitions.stadium, excluded.stadium),
			updated_at=CURRENT_TIMESTAMP`,
		id, name, city, stadium)
	if err != nil {
		return fmt.Errorf("upserting competition %d: %w", id, err)
	}
	return nil
}

// Result is one row ready for the results table, after canonicalization,
// normalization and scoring.
type Result struct {
	Season          int
	Gender          record.Gender
	EventID         int64
	AthleteID       int64
	ClubID          *int64
	RankInList      int
	PerformanceRaw  string
	PerformanceNorm string
	Value           *float64
	Wind            *float64
	PlacementRaw    string
	CompetitionID   *int64
	CompetitionName string
	VenueCity       string
	Stadium         string
	ResultDate      string
	WaPoints        *int
	WaExact         *bool
	WaEvent         string
	WaError         string
	SourceURL       string
	SourceType      string
}

// UpsertResult inserts a result or, when the natural key already exists,
// refreshes the mutable fields (club, rank, normalization, scoring) while
// descriptive fields only fill NULLs.
func (t *Tx) UpsertResult(r Result) error {
	var exact *int
	if r.WaExact != nil {
		v := 0
		if *r.WaExact {
			v = 1
		}
		exact = &v
	}
	_, err := t.tx.Exec(`
		INSERT INTO results (
			season, gender, event_id, athlete_id, club_id, rank_in_list,
			performance_raw, performance_clean, value, wind, placement_raw,
			competition_id, competition_name, venue_city, stadium, result_date,
			wa_points, wa_exact, wa_event, wa_error, source_url, source_type
		) VALUES (?, ?, ?, ?, ?, ?, ?, NULLIF(?, ''), ?, ?, NULLIF(?, ''),
			?, NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''), NULLIF(?, ''),
			?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?)
		ON CONFLICT DO UPDATE SET
			club_id=excluded.club_id,
			rank_in_list=excluded.rank_in_list,
			performance_clean=excluded.performance_clean,
			value=excluded.value,
			wind=excluded.wind,
			competition_name=COALESCE(excluded.competition_name, results.competition_name),
			venue_city=COALESCE(excluded.venue_city, results.venue_city),
			stadium=COALESCE(excluded.stadium, results.stadium),
			wa_points=excluded.wa_points,
			wa_exact=excluded.wa_exact,
			wa_event=excluded.wa_event,
			wa_error=excluded.wa_error,
			source_type=excluded.source_type,
			scraped_at=CURRENT_TIMESTAMP`,
		r.Season, string(r.Gender), r.EventID, r.AthleteID, r.ClubID, r.RankInList,
		r.PerformanceRaw, r.PerformanceNorm, r.Value, r.Wind, r.PlacementRaw,
		r.CompetitionID, r.CompetitionName, r.VenueCity, r.Stadium, r.ResultDate,
		r.WaPoints, exact, r.WaEvent, r.WaError, r.SourceURL, r.SourceType)
	if err != nil {
		return fmt.Errorf("upserting result for athlete %d: %w", r.AthleteID, err)
	}
	return nil
}

// DeleteBySource removes every row a page produced, so a changed parser can
// rebuild the page without stale keys surviving. gender and season narrow the
// delete for URLs shared across lists.
func (t *Tx) DeleteBySource(url string, gender record.Gender, season int) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if gender != "" && season > 0 {
		res, err = t.tx.Exec(
			`DELETE FROM results WHERE source_url = ? AND gender = ? AND season = ?`,
			url, string(gender), season)
	} else {
		res, err = t.tx.Exec(`DELETE FROM results WHERE source_url = ?`, url)
	}
	if err != nil {
		return 0, fmt.Errorf("deleting rows for %s: %w", url, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// DeleteBySourcePrefix removes rows whose source URL starts with prefix,
// used by the file-backed archive where one season spans many files.
func (t *Tx) DeleteBySourcePrefix(prefix string) (int64, error) {
	res, err := t.tx.Exec(`DELETE FROM results WHERE source_url LIKE ?`, prefix+"%")
	if err != nil {
		return 0, fmt.Errorf("deleting rows for prefix %s: %w", prefix, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// RecordSource updates the sources catalog after a page sync.
func (t *Tx) RecordSource(sourceType, url string, season int, gender record.Gender, rowCount int) error {
	_, err := t.tx.Exec(`
		INSERT INTO sources (source_type, url, season, gender, row_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url, season, gender) DO UPDATE SET
			source_type=excluded.source_type,
			row_count=excluded.row_count,
			last_synced_at=CURRENT_TIMESTAMP`,
		sourceType, url, season, string(gender), rowCount)
	if err != nil {
		return fmt.Errorf("recording source %s: %w", url, err)
	}
	return nil
}
