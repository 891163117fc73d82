package scraper

import (
	"testing"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

const statbankFixture = `<html><body>
<div id="øvelse">
  <h4>60 meter</h4>
  <table>
    <tr><th>Res</th><th>Navn</th><th>Født</th><th>Pl</th><th>Sted</th><th>Dato</th></tr>
    <tr>
      <td>7,45 (+1,2)</td>
      <td><a href="LandsStatistikk.php?showathl=12345&amp;showclass=11">Nordmann Ola</a>, IL Spurt</td>
      <td>15.03.85</td>
      <td>1</td>
      <td title="Bislett stadion"><a href="javascript:posttoresultlist(777)">NM</a> Oslo,</td>
      <td>28.06.25</td>
    </tr>
    <tr>
      <td>7,45</td>
      <td><a href="LandsStatistikk.php?showathl=22222">Hansen Per</a>, Tjalve</td>
      <td>01.01.90</td>
      <td>2</td>
      <td>Stavanger</td>
      <td>15.07.25</td>
    </tr>
    <tr>
      <td>-----</td>
      <td><a href="LandsStatistikk.php?showathl=33333">Strøket Mann</a></td>
      <td></td><td></td><td></td><td></td>
    </tr>
    <tr>
      <td>7,50</td>
      <td><a href="LandsStatistikk.php?showathl=44444">Berg Knut</a>, Vidar</td>
      <td>20.12.88</td>
      <td>3</td>
      <td>Bergen</td>
      <td>02.08.25</td>
    </tr>
    <tr>
      <td>7,55</td>
      <td>Uten Lenke, Klubb</td>
      <td></td><td></td><td></td><td></td>
    </tr>
  </table>
</div>
<div id="øvelse">
  <table><tr><th>x</th></tr><tr><td>7,99</td></tr></table>
</div>
</body></html>`

func TestParseStatbank(t *testing.T) {
	rows, err := ParseStatbank([]byte(statbankFixture), 2025, record.Men, "http://example/src")
	if err != nil {
		t.Fatalf("ParseStatbank: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	r := rows[0]
	if r.EventLabel != "60 meter" {
		t.Errorf("event = %q", r.EventLabel)
	}
	if r.RankInList != 1 || r.CleanPerf != "7,45" || r.RawPerf != "7,45 (+1,2)" {
		t.Errorf("row 0 = rank %d perf %q raw %q", r.RankInList, r.CleanPerf, r.RawPerf)
	}
	if r.Wind == nil || *r.Wind != 1.2 {
		t.Errorf("wind = %v", r.Wind)
	}
	if r.AthleteID != 12345 || r.AthleteName != "Nordmann Ola" || r.ClubName != "IL Spurt" {
		t.Errorf("athlete = %d %q %q", r.AthleteID, r.AthleteName, r.ClubName)
	}
	if r.BirthDate != "1985-03-15" {
		t.Errorf("birth = %q", r.BirthDate)
	}
	if r.Placement != "1" || r.VenueCity != "Oslo" || r.Stadium != "Bislett stadion" {
		t.Errorf("place/venue/stadium = %q %q %q", r.Placement, r.VenueCity, r.Stadium)
	}
	if r.CompID != 777 || r.CompName != "NM" {
		t.Errorf("comp = %d %q", r.CompID, r.CompName)
	}
	if r.ResultDate != "2025-06-28" || r.SourceURL != "http://example/src" {
		t.Errorf("date/source = %q %q", r.ResultDate, r.SourceURL)
	}

	// Tied performance keeps the rank, next result jumps past the tie.
	if rows[1].RankInList != 1 {
		t.Errorf("tie rank = %d, want 1", rows[1].RankInList)
	}
	if rows[2].RankInList != 3 {
		t.Errorf("post-tie rank = %d, want 3", rows[2].RankInList)
	}
	if rows[1].AthleteID != 22222 || rows[2].AthleteID != 44444 {
		t.Errorf("athlete ids = %d %d", rows[1].AthleteID, rows[2].AthleteID)
	}
}

func TestBuildStatbankURL(t *testing.T) {
	got := BuildStatbankURL(StatbankClassWomen, 2024)
	want := "https://www.minfriidrettsstatistikk.info/php/LandsStatistikk.php?showclass=22&showevent=0&outdoor=Y&showseason=2024&showclub=0"
	if got != want {
		t.Errorf("got %q", got)
	}
}

func TestStatbankClass(t *testing.T) {
	if got := StatbankClass(record.Women); got != StatbankClassWomen {
		t.Errorf("Women class = %d", got)
	}
	if got := StatbankClass(record.Men); got != StatbankClassMen {
		t.Errorf("Men class = %d", got)
	}
}
