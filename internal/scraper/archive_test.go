package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

const archiveSprintFile = `100 meter – Elektronisk tid

rank_in_list,athlete_name,club_name,birth_date,venue_city,dato,performance_raw
1,Ola Hansen,IL Tyr,15.02.75,Oslo,28.06,10.8
2,John Doe (ETH),,ukjent,Bergen,,10.9
-,Guest Man,Club,1970,Oslo,,10.5
3,Per Olsen,Tjalve,1972,Stavanger,05.07.97,10.9

Lengde (Long Jump)

rank_in_list,athlete_name,club_name,birth_date,venue_city,performance_raw
1,Knut Berg,Vidar,1974,Oslo,7.42 (-0,6)
`

func TestParseArchiveFile(t *testing.T) {
	rows := ParseArchiveFile(archiveSprintFile, 1997, record.Men, "old_data:1997/menn/sprint.txt")
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	r := rows[0]
	if r.EventLabel != "100 meter" || r.Season != 1997 {
		t.Errorf("event/season = %q %d", r.EventLabel, r.Season)
	}
	if r.RankInList != 1 || r.CleanPerf != "10.8" {
		t.Errorf("row 0 = rank %d perf %q", r.RankInList, r.CleanPerf)
	}
	if r.AthleteName != "Ola Hansen" || r.ClubName != "IL Tyr" || r.BirthDate != "1975-02-15" {
		t.Errorf("athlete = %q %q %q", r.AthleteName, r.ClubName, r.BirthDate)
	}
	if r.VenueCity != "Oslo" || r.ResultDate != "1997-06-28" {
		t.Errorf("venue/date = %q %q", r.VenueCity, r.ResultDate)
	}
	if r.Nationality != "" {
		t.Errorf("nationality = %q, want domestic", r.Nationality)
	}
	if r.SourceURL != "old_data:1997/menn/sprint.txt" {
		t.Errorf("source = %q", r.SourceURL)
	}

	// Foreign guest keeps the country code; unknown birth stays empty.
	if rows[1].AthleteName != "John Doe" || rows[1].Nationality != "ETH" || rows[1].BirthDate != "" {
		t.Errorf("row 1 = %q %q %q", rows[1].AthleteName, rows[1].Nationality, rows[1].BirthDate)
	}

	// The "-" ranked guest entry is skipped and the tie on 10.9 shares rank 2.
	if rows[2].AthleteName != "Per Olsen" || rows[2].RankInList != 2 {
		t.Errorf("row 2 = %q rank %d", rows[2].AthleteName, rows[2].RankInList)
	}
	if rows[2].BirthDate != "1972" {
		t.Errorf("year-only birth = %q", rows[2].BirthDate)
	}

	// Second section: wind survives the shielded comma, no date column.
	lj := rows[3]
	if lj.EventLabel != "Lengde" || lj.CleanPerf != "7.42" {
		t.Errorf("lj = %q %q", lj.EventLabel, lj.CleanPerf)
	}
	if lj.Wind == nil || *lj.Wind != -0.6 {
		t.Errorf("lj wind = %v", lj.Wind)
	}
	if lj.ResultDate != "" || lj.VenueCity != "Oslo" {
		t.Errorf("lj date/venue = %q %q", lj.ResultDate, lj.VenueCity)
	}
}

const archiveDistanceFile = `5000 meter

rank_in_list,athlete_name,club_name,birth_date,venue_city,performance_raw
1,Arne Kvalheim,Tjalve,1949,Oslo,13:51.2

rank_in_list,athlete_name,club_name,birth_date,venue_city,performance_raw
1,Knut Kvalheim,Tjalve,1950,Bergen,28:22.4
`

func TestParseArchiveFileUnnamedContinuation(t *testing.T) {
	rows := ParseArchiveFile(archiveDistanceFile, 1974, record.Men, "u")
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].EventLabel != "5000 meter" {
		t.Errorf("first section = %q", rows[0].EventLabel)
	}
	if rows[1].EventLabel != "10000 meter" {
		t.Errorf("continuation section = %q", rows[1].EventLabel)
	}
}

func TestParseArchiveDir(t *testing.T) {
	dir := t.TempDir()
	menn := filepath.Join(dir, "1997", "menn")
	if err := os.MkdirAll(filepath.Join(menn, "kilder"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(menn, "sprint.txt"), []byte(archiveSprintFile), 0o644); err != nil {
		t.Fatal(err)
	}
	note := "Transkribert fra https://example.org/stats/1997.html i 2019."
	if err := os.WriteFile(filepath.Join(menn, "kilder", "sprint_kilde.txt"), []byte(note), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, sources, err := ParseArchiveDir(dir, 1997)
	if err != nil {
		t.Fatalf("ParseArchiveDir: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	src := sources[0]
	if src.SourceURL != "old_data:1997/menn/sprint.txt" {
		t.Errorf("source url = %q", src.SourceURL)
	}
	if src.KildeURL != "https://example.org/stats/1997.html" {
		t.Errorf("kilde url = %q", src.KildeURL)
	}
	if src.Gender != record.Men || src.RowCount != 4 {
		t.Errorf("gender/count = %q %d", src.Gender, src.RowCount)
	}
	if rows[0].SourceURL != src.SourceURL {
		t.Errorf("row source = %q", rows[0].SourceURL)
	}

	// Missing season directory is not an error.
	rows, sources, err = ParseArchiveDir(dir, 1950)
	if err != nil || rows != nil || sources != nil {
		t.Errorf("missing season: %v %v %v", rows, sources, err)
	}
}

func TestArchiveSourcePrefix(t *testing.T) {
	url := ArchiveSourceURL(1997, "kvinner", "hopp.txt")
	if url != "old_data:1997/kvinner/hopp.txt" {
		t.Errorf("url = %q", url)
	}
	prefix := ArchiveSourcePrefix(1997)
	if prefix != "old_data:1997/" {
		t.Errorf("prefix = %q", prefix)
	}
}
