package scraper

import (
	"testing"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

func roadTestPage(season int) RoadPage {
	return RoadPage{
		Season:  season,
		Gender:  record.Women,
		EventNo: "10 km gateløp",
		URL:     "https://www.kondis.no/test",
	}
}

const roadTableFixture = `<html><body>
<table><tr><td>Meny</td></tr><tr><td>Lenker</td></tr></table>
<table>
  <tr><td>Plass</td><td>Navn</td><td>Tid</td><td>Løp</td><td>Dato</td></tr>
  <tr><td>1</td><td>Hansen Sigrid, SK Vidar -85</td><td>31.15</td><td>Sentrumsløpet</td><td>26.apr</td></tr>
  <tr><td>2</td><td>Aas Marit, Gular -90</td><td>31.40</td><td>Hytteplanmila</td><td>19.okt</td></tr>
  <tr><td>3</td><td>Dal Ingrid -97</td><td>32.05</td><td>Fornebuløpet</td><td>10.mai</td></tr>
</table>
</body></html>`

func TestParseRoadTable(t *testing.T) {
	rows, err := ParseRoad([]byte(roadTableFixture), roadTestPage(2019))
	if err != nil {
		t.Fatalf("ParseRoad: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	r := rows[0]
	if r.RankInList != 1 || r.CleanPerf != "31.15" {
		t.Errorf("row 0 = rank %d perf %q", r.RankInList, r.CleanPerf)
	}
	if r.AthleteName != "Hansen Sigrid" || r.ClubName != "SK Vidar" {
		t.Errorf("athlete = %q club %q", r.AthleteName, r.ClubName)
	}
	if r.BirthDate != "1985-01-01" {
		t.Errorf("birth = %q", r.BirthDate)
	}
	if r.CompName != "Sentrumsløpet" || r.ResultDate != "2019-04-26" {
		t.Errorf("comp/date = %q %q", r.CompName, r.ResultDate)
	}
	if r.EventLabel != "10 km gateløp" || r.Gender != record.Women {
		t.Errorf("event/gender = %q %q", r.EventLabel, r.Gender)
	}

	// Clubless athlete with birth year only.
	if rows[2].AthleteName != "Dal Ingrid" || rows[2].ClubName != "" || rows[2].BirthDate != "1997-01-01" {
		t.Errorf("row 2 = %q %q %q", rows[2].AthleteName, rows[2].ClubName, rows[2].BirthDate)
	}
}

const roadPreFixture = `<html><body>
<pre>
1. Nordmann Kari, Tjalve -90  35.12 Hyttekjappen
2. Berg Åse, Vidar -88  35.40 Sentrumsløpet
3. Olsen Liv -92  36.01
Utarbeidet av statistikkutvalget.
</pre>
</body></html>`

func TestParseRoadPre(t *testing.T) {
	rows, err := ParseRoad([]byte(roadPreFixture), roadTestPage(2009))
	if err != nil {
		t.Fatalf("ParseRoad: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].AthleteName != "Nordmann Kari" || rows[0].ClubName != "Tjalve" {
		t.Errorf("row 0 athlete = %q %q", rows[0].AthleteName, rows[0].ClubName)
	}
	if rows[0].CleanPerf != "35.12" || rows[0].CompName != "Hyttekjappen" {
		t.Errorf("row 0 perf/comp = %q %q", rows[0].CleanPerf, rows[0].CompName)
	}
	if rows[1].RankInList != 2 || rows[1].BirthDate != "1988-01-01" {
		t.Errorf("row 1 = rank %d birth %q", rows[1].RankInList, rows[1].BirthDate)
	}
	// Editorial footer after the stop marker must not leak into results.
	if rows[2].CompName != "" {
		t.Errorf("row 2 comp = %q", rows[2].CompName)
	}
}

const roadTextFixture = `<html><body><p>
1 | Aas Marit, Gular -95 | 16.39 | Fornebuløpet 10.mai
2 | Dal Ingrid -97 | 16.50 | Bislett
59.48 Lie Grete, Vidar -88 Valencia, ESP 22.okt
16.55 Moe Eva, Ull -01
Oslo Maraton 21.sep
10
</p></body></html>`

func TestParseRoadText(t *testing.T) {
	rows, err := ParseRoad([]byte(roadTextFixture), roadTestPage(2018))
	if err != nil {
		t.Fatalf("ParseRoad: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	// Pipe grammar, rank first.
	if rows[0].RankInList != 1 || rows[0].AthleteName != "Aas Marit" || rows[0].ClubName != "Gular" {
		t.Errorf("row 0 = rank %d %q %q", rows[0].RankInList, rows[0].AthleteName, rows[0].ClubName)
	}
	if rows[0].CompName != "Fornebuløpet" || rows[0].ResultDate != "2018-05-10" {
		t.Errorf("row 0 comp/date = %q %q", rows[0].CompName, rows[0].ResultDate)
	}
	if rows[1].CompName != "Bislett" || rows[1].ResultDate != "" {
		t.Errorf("row 1 comp/date = %q %q", rows[1].CompName, rows[1].ResultDate)
	}

	// Space grammar, time first: auto rank continues past the parsed ranks.
	r := rows[2]
	if r.RankInList != 3 || r.CleanPerf != "59.48" {
		t.Errorf("row 2 = rank %d perf %q", r.RankInList, r.CleanPerf)
	}
	if r.AthleteName != "Lie Grete" || r.ClubName != "Vidar" || r.VenueCity != "Valencia, ESP" {
		t.Errorf("row 2 = %q %q %q", r.AthleteName, r.ClubName, r.VenueCity)
	}
	if r.BirthDate != "1988-01-01" || r.ResultDate != "2018-10-22" {
		t.Errorf("row 2 birth/date = %q %q", r.BirthDate, r.ResultDate)
	}

	// Row split over two lines is glued back together.
	if rows[3].VenueCity != "Oslo Maraton" || rows[3].ResultDate != "2018-09-21" {
		t.Errorf("row 3 venue/date = %q %q", rows[3].VenueCity, rows[3].ResultDate)
	}
	if rows[3].BirthDate != "2001-01-01" {
		t.Errorf("row 3 birth = %q", rows[3].BirthDate)
	}
}

func TestParseRankToken(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"36", 36},
		{"36.", 36},
		{"36.1", 36},
		{"36,2", 36},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := parseRankToken(tc.in); got != tc.want {
			t.Errorf("parseRankToken(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoadPagesFor(t *testing.T) {
	pages := RoadPagesFor(map[int]bool{2017: true}, record.Men)
	var disabled int
	for _, p := range pages {
		if p.Season != 2017 || p.Gender != record.Men {
			t.Fatalf("unexpected page %+v", p)
		}
		if p.Disabled {
			disabled++
		}
	}
	if disabled != 1 {
		t.Errorf("disabled pages = %d, want 1", disabled)
	}
}
