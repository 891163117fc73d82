package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/friidrett-stats/internal/fetch"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
	"github.com/pfrederiksen/friidrett-stats/internal/scoring"
	"github.com/pfrederiksen/friidrett-stats/internal/scraper"
	"github.com/pfrederiksen/friidrett-stats/internal/store"
)

// fakeCalc scores everything at 1000 points and rejects 7.50 so the failure
// counter has something to count.
type fakeCalc struct {
	known map[string]bool
}

func (c *fakeCalc) EventNames(record.Gender) (map[string]bool, error) {
	return c.known, nil
}

func (c *fakeCalc) EventMeta(g record.Gender, event string) (*scoring.Meta, error) {
	if !c.known[event] {
		return nil, nil
	}
	return &scoring.Meta{Gender: string(g), Event: event, Orientation: "lower", Precision: 2}, nil
}

func (c *fakeCalc) PointsFor(g record.Gender, event, normalized string) (scoring.Score, error) {
	if normalized == "7.50" {
		return scoring.Score{}, errors.New("performance below scoring table")
	}
	return scoring.Score{Points: 1000, Exact: true}, nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

// seedCache plants a page in the fetch cache so Get never hits the network.
func seedCache(t *testing.T, cacheDir, url, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, fetch.CacheFilename(url)), []byte(body), 0o644))
}

const statbankPage = `<html><body>
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
      <td>28.06.23</td>
    </tr>
    <tr>
      <td>7,45</td>
      <td><a href="LandsStatistikk.php?showathl=22222">Hansen Per</a>, Tjalve</td>
      <td>01.01.90</td>
      <td>2</td>
      <td>Stavanger</td>
      <td>15.07.23</td>
    </tr>
    <tr>
      <td>7,50</td>
      <td><a href="LandsStatistikk.php?showathl=44444">Berg Knut</a>, Vidar</td>
      <td>20.12.88</td>
      <td>3</td>
      <td>Bergen</td>
      <td>02.08.23</td>
    </tr>
  </table>
</div>
</body></html>`

func TestSyncTrackStatbank(t *testing.T) {
	st := newTestStore(t)
	cacheDir := t.TempDir()
	url := scraper.BuildStatbankURL(scraper.StatbankClass(record.Men), 2023)
	seedCache(t, cacheDir, url, statbankPage)

	syncer := New(st, &fakeCalc{known: map[string]bool{"60m": true}}, fetch.New(cacheDir, false), 0)
	sum, err := syncer.SyncTrack(context.Background(), []int{2023}, record.Men)
	require.NoError(t, err)

	require.Equal(t, 1, sum.Pages)
	require.Equal(t, 3, sum.RowsSeen)
	require.Equal(t, 3, sum.RowsInserted)
	require.Equal(t, 2, sum.PointsOK)
	require.Equal(t, 1, sum.PointsFailed)
	require.Equal(t, 0, sum.PointsMissing)

	n, err := st.CountResults("source_type = ?", SourceStatbank)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = st.CountResults("wa_points = 1000")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = st.CountResults("wa_error != ''")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	sources, err := st.Sources()
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, url, sources[0].URL)
	require.Equal(t, 3, sources[0].RowCount)

	// A second run rebuilds the page instead of stacking duplicates.
	sum, err = syncer.SyncTrack(context.Background(), []int{2023}, record.Men)
	require.NoError(t, err)
	require.Equal(t, 3, sum.RowsInserted)

	n, err = st.CountResults("")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestSyncRoadPurgesDisabledPage(t *testing.T) {
	st := newTestStore(t)
	cacheDir := t.TempDir()

	var disabled scraper.RoadPage
	pages := scraper.RoadPagesFor(map[int]bool{2017: true}, record.Men)
	require.NotEmpty(t, pages)
	for _, p := range pages {
		if p.Disabled {
			disabled = p
			continue
		}
		seedCache(t, cacheDir, p.URL, "<html><body><p>Ingen resultater.</p></body></html>")
	}
	require.True(t, disabled.Disabled, "catalog should blacklist one 2017 page")

	// A row left behind by a run before the page was blacklisted.
	require.NoError(t, st.WithTx(func(tx *store.Tx) error {
		eventID, err := tx.GetOrCreateEvent(record.Men, "Halvmaraton", "", "lower")
		require.NoError(t, err)
		require.NoError(t, tx.UpsertAthlete(-5, record.Men, "Gammel Oppføring", "", ""))
		return tx.UpsertResult(store.Result{
			Season:          2017,
			Gender:          record.Men,
			EventID:         eventID,
			AthleteID:       -5,
			RankInList:      1,
			PerformanceRaw:  "1.10.00",
			PerformanceNorm: "1:10:00",
			SourceURL:       disabled.URL,
			SourceType:      SourceRoad,
		})
	}))

	syncer := New(st, &fakeCalc{known: map[string]bool{}}, fetch.New(cacheDir, false), 0)
	sum, err := syncer.SyncRoad(context.Background(), []int{2017}, record.Men)
	require.NoError(t, err)
	require.Equal(t, 0, sum.Pages)

	n, err := st.CountResults("source_url = ?", disabled.URL)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

const archiveSprint = `100 meter – Elektronisk tid

rank_in_list,athlete_name,club_name,birth_date,venue_city,performance_raw
1,Ola Hansen,IL Tyr,15.02.75,Oslo,10.8
2,Per Olsen,Tjalve,1972,Stavanger,10.9

Lengde

rank_in_list,athlete_name,club_name,birth_date,venue_city,performance_raw
1,Knut Berg,Vidar,1974,Oslo,7.42
`

func TestSyncArchive(t *testing.T) {
	st := newTestStore(t)
	dataDir := t.TempDir()
	menDir := filepath.Join(dataDir, "1997", "menn")
	require.NoError(t, os.MkdirAll(menDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(menDir, "sprint.txt"), []byte(archiveSprint), 0o644))

	// Long jump is left out of the scoring tables on purpose.
	syncer := New(st, &fakeCalc{known: map[string]bool{"100m": true}}, nil, 0)
	sum, err := syncer.SyncArchive(dataDir, []int{1997, 1950})
	require.NoError(t, err)

	require.Equal(t, 1, sum.Pages)
	require.Equal(t, 3, sum.RowsSeen)
	require.Equal(t, 3, sum.RowsInserted)
	require.Equal(t, 2, sum.PointsOK)
	require.Equal(t, 1, sum.PointsMissing)

	n, err := st.CountResults("source_url = ?", "old_data:1997/menn/sprint.txt")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = st.CountResults("wa_event = ''")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Rerunning rebuilds the season from scratch.
	sum, err = syncer.SyncArchive(dataDir, []int{1997})
	require.NoError(t, err)
	require.Equal(t, 3, sum.RowsInserted)

	n, err = st.CountResults("")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestPolitePauseRespectsContext(t *testing.T) {
	s := New(nil, nil, nil, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.politePause(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("politePause ignored cancellation")
	}
}
