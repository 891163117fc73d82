package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func count(t *testing.T, s *Store, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, s.db.Get(&n, query, args...))
	return n
}

func baseResult(eventID, athleteID int64) Result {
	return Result{
		Season:          2015,
		Gender:          record.Men,
		EventID:         eventID,
		AthleteID:       athleteID,
		RankInList:      1,
		PerformanceRaw:  "10,53",
		PerformanceNorm: "10.53",
		SourceURL:       "https://example.org/list",
		SourceType:      "statbank",
	}
}

func seedEventAndAthlete(t *testing.T, s *Store) (eventID int64) {
	t.Helper()
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		var err error
		eventID, err = tx.GetOrCreateEvent(record.Men, "100 meter", "100m", "lower")
		require.NoError(t, err)
		return tx.UpsertAthlete(42, record.Men, "Hansen Ole", "1985-02-01", "")
	}))
	return eventID
}

func TestInitIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Init())
	require.NoError(t, s.Init())
}

func TestUpsertResultIdempotent(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	for i := 0; i < 2; i++ {
		require.NoError(t, s.WithTx(func(tx *Tx) error {
			return tx.UpsertResult(baseResult(eventID, 42))
		}))
	}

	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM results`))
}

func TestNaturalKeyNullSafe(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	// Same row with NULL result date, competition and placement twice must
	// still collapse to one row (plain UNIQUE would treat the NULLs as
	// distinct and insert twice).
	r := baseResult(eventID, 42)
	r.ResultDate = ""
	r.PlacementRaw = ""
	for i := 0; i < 2; i++ {
		require.NoError(t, s.WithTx(func(tx *Tx) error {
			return tx.UpsertResult(r)
		}))
	}
	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM results`))

	// A different performance is a different natural key.
	r2 := r
	r2.PerformanceRaw = "10,61"
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		return tx.UpsertResult(r2)
	}))
	require.Equal(t, 2, count(t, s, `SELECT COUNT(*) FROM results`))
}

func TestUpsertResultRefreshesMutableFields(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	first := baseResult(eventID, 42)
	first.VenueCity = "Oslo"
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		return tx.UpsertResult(first)
	}))

	second := baseResult(eventID, 42)
	second.RankInList = 3
	points := 900
	exact := true
	second.WaPoints = &points
	second.WaExact = &exact
	second.VenueCity = "" // must not erase Oslo
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		return tx.UpsertResult(second)
	}))

	var row struct {
		Rank  int     `db:"rank_in_list"`
		Pts   *int    `db:"wa_points"`
		Venue *string `db:"venue_city"`
	}
	require.NoError(t, s.db.Get(&row, `SELECT rank_in_list, wa_points, venue_city FROM results`))
	require.Equal(t, 3, row.Rank)
	require.NotNil(t, row.Pts)
	require.Equal(t, 900, *row.Pts)
	require.NotNil(t, row.Venue)
	require.Equal(t, "Oslo", *row.Venue)
}

func TestUpsertAthleteNameUpgradeAndBirthFill(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		require.NoError(t, tx.UpsertAthlete(7, record.Women, "Berg Kari Anne", "", ""))
		// Shorter name never downgrades, birth date fills the NULL.
		require.NoError(t, tx.UpsertAthlete(7, record.Women, "Berg K", "1990-05-05", ""))
		// A later conflicting birth date does not overwrite.
		return tx.UpsertAthlete(7, record.Women, "Berg Kari Anne Marie", "1991-01-01", "")
	}))

	var row struct {
		Name  string  `db:"name"`
		Birth *string `db:"birth_date"`
	}
	require.NoError(t, s.db.Get(&row, `SELECT name, birth_date FROM athletes WHERE id = 7`))
	require.Equal(t, "Berg Kari Anne Marie", row.Name)
	require.NotNil(t, row.Birth)
	require.Equal(t, "1990-05-05", *row.Birth)
}

func TestUpsertAthleteNationalitySticky(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		require.NoError(t, tx.UpsertAthlete(8, record.Men, "Smith John", "", ""))
		require.NoError(t, tx.UpsertAthlete(8, record.Men, "Smith John", "", "GBR"))
		// Back to default input: the foreign nationality sticks.
		return tx.UpsertAthlete(8, record.Men, "Smith John", "", "")
	}))

	var nat string
	require.NoError(t, s.db.Get(&nat, `SELECT nationality FROM athletes WHERE id = 8`))
	require.Equal(t, "GBR", nat)
}

func TestGetOrCreateClub(t *testing.T) {
	s := newStore(t)

	var a, b *int64
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		var err error
		a, err = tx.GetOrCreateClub(" IL Tyr ")
		require.NoError(t, err)
		b, err = tx.GetOrCreateClub("IL Tyr")
		require.NoError(t, err)
		none, err := tx.GetOrCreateClub("   ")
		require.NoError(t, err)
		require.Nil(t, none)
		return nil
	}))
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.Equal(t, *a, *b)
}

func TestGetOrCreateEventFillsScoringCode(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		id1, err := tx.GetOrCreateEvent(record.Men, "800 meter", "", "lower")
		require.NoError(t, err)
		id2, err := tx.GetOrCreateEvent(record.Men, "800 meter", "800m", "lower")
		require.NoError(t, err)
		require.Equal(t, id1, id2)
		// Empty code later does not clear the stored one.
		_, err = tx.GetOrCreateEvent(record.Men, "800 meter", "", "lower")
		return err
	}))

	var code *string
	require.NoError(t, s.db.Get(&code, `SELECT wa_event FROM events WHERE gender = 'Men' AND name_no = '800 meter'`))
	require.NotNil(t, code)
	require.Equal(t, "800m", *code)
}

func TestDeleteBySourceRebuild(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	r := baseResult(eventID, 42)
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		return tx.UpsertResult(r)
	}))

	// Parser change: the same page now yields a row under a different key.
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		n, err := tx.DeleteBySource(r.SourceURL, record.Men, 2015)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
		r2 := r
		r2.PerformanceRaw = "10,5"
		return tx.UpsertResult(r2)
	}))

	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM results`))
	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM results WHERE performance_raw = '10,5'`))
}

func TestDeleteBySourcePrefix(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		a := baseResult(eventID, 42)
		a.SourceURL = "file://archive/1998/men/sprint.txt"
		require.NoError(t, tx.UpsertResult(a))
		b := baseResult(eventID, 42)
		b.SourceURL = "file://archive/1999/men/sprint.txt"
		b.PerformanceRaw = "10,61"
		return tx.UpsertResult(b)
	}))

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		n, err := tx.DeleteBySourcePrefix("file://archive/1998/")
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
		return nil
	}))
	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM results`))
}

func TestRecordSource(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WithTx(func(tx *Tx) error {
		require.NoError(t, tx.RecordSource("road", "https://example.org/m2015", 2015, record.Men, 120))
		return tx.RecordSource("road", "https://example.org/m2015", 2015, record.Men, 125)
	}))

	require.Equal(t, 1, count(t, s, `SELECT COUNT(*) FROM sources`))
	require.Equal(t, 125, count(t, s, `SELECT row_count FROM sources`))
}

func TestFillClubGaps(t *testing.T) {
	s := newStore(t)
	eventID := seedEventAndAthlete(t, s)

	var clubID *int64
	require.NoError(t, s.WithTx(func(tx *Tx) error {
		var err error
		clubID, err = tx.GetOrCreateClub("IL Tyr")
		require.NoError(t, err)

		with := baseResult(eventID, 42)
		with.ClubID = clubID
		require.NoError(t, tx.UpsertResult(with))

		without := baseResult(eventID, 42)
		without.PerformanceRaw = "10,61"
		return tx.UpsertResult(without)
	}))

	n, err := s.FillClubGaps()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Equal(t, 2, count(t, s, `SELECT COUNT(*) FROM results WHERE club_id IS NOT NULL`))
}
