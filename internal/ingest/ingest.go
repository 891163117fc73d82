// Package ingest orchestrates sync runs: fetch or read a source, parse it,
// map events to scoring codes, normalize performances and write everything
// through the store in one transaction per page.
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/friidrett-stats/internal/eventname"
	"github.com/pfrederiksen/friidrett-stats/internal/fetch"
	"github.com/pfrederiksen/friidrett-stats/internal/logger"
	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
	"github.com/pfrederiksen/friidrett-stats/internal/scoring"
	"github.com/pfrederiksen/friidrett-stats/internal/scraper"
	"github.com/pfrederiksen/friidrett-stats/internal/store"
)

// Source type labels stored on results and in the sources catalog.
const (
	SourceStatbank = "statbank"
	SourceLegacy   = "legacy"
	SourceRoad     = "road"
	SourceArchive  = "archive"
)

// DefaultPoliteDelay spaces out live page fetches. Cache hits skip it.
const DefaultPoliteDelay = 500 * time.Millisecond

// Summary counts what one sync run did. Pages counts only pages that were
// ingested; fetched pages that yielded no rows are left untouched in the
// database and uncounted.
type Summary struct {
	Pages         int
	RowsSeen      int
	RowsInserted  int
	PointsOK      int
	PointsFailed  int
	PointsMissing int
}

// Fields reports the summary as structured log fields.
func (s Summary) Fields() logger.Fields {
	return logger.Fields{
		"pages":          s.Pages,
		"rows_seen":      s.RowsSeen,
		"rows_inserted":  s.RowsInserted,
		"points_ok":      s.PointsOK,
		"points_failed":  s.PointsFailed,
		"points_missing": s.PointsMissing,
	}
}

// Syncer drives sync runs against one results store and one scoring table
// set.
type Syncer struct {
	store   *store.Store
	calc    scoring.Calculator
	fetcher *fetch.Client
	delay   time.Duration

	eventsByGender map[record.Gender]map[string]bool
}

// New wires a Syncer. A nil fetcher is only valid for SyncArchive, which
// reads local files. delay <= 0 disables the politeness pause.
func New(st *store.Store, calc scoring.Calculator, fetcher *fetch.Client, delay time.Duration) *Syncer {
	return &Syncer{
		store:          st,
		calc:           calc,
		fetcher:        fetcher,
		delay:          delay,
		eventsByGender: make(map[record.Gender]map[string]bool),
	}
}

// SyncTrack ingests the track-and-field national lists for the given years.
// Years with curated federation pages use those; all other years use the
// statbank. An empty gender means both.
func (s *Syncer) SyncTrack(ctx context.Context, years []int, gender record.Gender) (Summary, error) {
	var sum Summary
	for _, year := range years {
		for _, g := range genders(gender) {
			pages := scraper.LegacyPagesFor(map[int]bool{year: true}, g)
			if len(pages) > 0 {
				if err := s.syncLegacyPages(ctx, pages, year, g, &sum); err != nil {
					return sum, err
				}
				continue
			}
			if err := s.syncStatbankPage(ctx, year, g, &sum); err != nil {
				return sum, err
			}
		}
	}
	return sum, nil
}

// SyncLegacy ingests only the curated federation pages for the given years,
// leaving statbank-backed seasons alone.
func (s *Syncer) SyncLegacy(ctx context.Context, years []int, gender record.Gender) (Summary, error) {
	var sum Summary
	for _, year := range years {
		for _, g := range genders(gender) {
			pages := scraper.LegacyPagesFor(map[int]bool{year: true}, g)
			if err := s.syncLegacyPages(ctx, pages, year, g, &sum); err != nil {
				return sum, err
			}
		}
	}
	return sum, nil
}

func (s *Syncer) syncLegacyPages(ctx context.Context, pages []scraper.LegacyPage, year int, g record.Gender, sum *Summary) error {
	for _, page := range pages {
		data, fromCache, err := s.fetcher.Get(ctx, page.URL)
		if err != nil {
			// Some curated pages are dead; one bad page must not stop
			// the run.
			logger.Warn("skipping federation page", logger.Fields{
				"url": page.URL, "season": year, "gender": string(g), "reason": err.Error(),
			})
			continue
		}
		decoded, err := fetch.DecodeHTML(data, "")
		if err != nil {
			decoded = data
		}
		rows, err := scraper.ParseLegacy(decoded, year, g, page.URL)
		if err != nil {
			logger.Warn("skipping federation page", logger.Fields{
				"url": page.URL, "season": year, "gender": string(g), "reason": err.Error(),
			})
			continue
		}
		if len(rows) == 0 {
			continue
		}
		if err := s.ingestPage(SourceLegacy, page.URL, year, g, rows, false, false, sum); err != nil {
			return err
		}
		if !fromCache {
			s.politePause(ctx)
		}
	}
	return nil
}

func (s *Syncer) syncStatbankPage(ctx context.Context, year int, g record.Gender, sum *Summary) error {
	url := scraper.BuildStatbankURL(scraper.StatbankClass(g), year)
	data, fromCache, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("fetching statbank %d/%s: %w", year, g, err)
	}
	decoded, err := fetch.DecodeHTML(data, "")
	if err != nil {
		decoded = data
	}
	rows, err := scraper.ParseStatbank(decoded, year, g, url)
	if err != nil {
		return fmt.Errorf("parsing statbank %d/%s: %w", year, g, err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.ingestPage(SourceStatbank, url, year, g, rows, true, false, sum); err != nil {
		return err
	}
	if !fromCache {
		s.politePause(ctx)
	}
	return nil
}

// SyncRoad ingests the Kondis road-running year lists. Disabled catalog
// pages are purged instead of fetched, so bad data ingested before a page
// was blacklisted disappears on the next run.
func (s *Syncer) SyncRoad(ctx context.Context, years []int, gender record.Gender) (Summary, error) {
	yearSet := make(map[int]bool, len(years))
	for _, y := range years {
		yearSet[y] = true
	}

	var sum Summary
	for _, page := range scraper.RoadPagesFor(yearSet, gender) {
		if page.Disabled {
			err := s.store.WithTx(func(tx *store.Tx) error {
				_, err := tx.DeleteBySource(page.URL, "", 0)
				return err
			})
			if err != nil {
				return sum, err
			}
			continue
		}

		data, fromCache, err := s.fetcher.Get(ctx, page.URL)
		if err != nil {
			return sum, fmt.Errorf("fetching road list %s: %w", page.URL, err)
		}
		decoded, err := fetch.DecodeHTML(data, "")
		if err != nil {
			decoded = data
		}
		rows, err := scraper.ParseRoad(decoded, page)
		if err != nil {
			return sum, fmt.Errorf("parsing road list %s: %w", page.URL, err)
		}
		if len(rows) == 0 {
			continue
		}
		if err := s.ingestPage(SourceRoad, page.URL, page.Season, page.Gender, rows, false, true, &sum); err != nil {
			return sum, err
		}
		if !fromCache {
			s.politePause(ctx)
		}
	}
	return sum, nil
}

// SyncArchive ingests the hand-transcribed season files under dataDir. Each
// season is rebuilt atomically by purging its source prefix first.
func (s *Syncer) SyncArchive(dataDir string, years []int) (Summary, error) {
	var sum Summary
	for _, year := range years {
		rows, sources, err := scraper.ParseArchiveDir(dataDir, year)
		if err != nil {
			return sum, fmt.Errorf("parsing archive %d: %w", year, err)
		}
		if len(rows) == 0 {
			continue
		}

		err = s.store.WithTx(func(tx *store.Tx) error {
			if _, err := tx.DeleteBySourcePrefix(scraper.ArchiveSourcePrefix(year)); err != nil {
				return err
			}
			for _, row := range rows {
				if err := s.ingestRow(tx, row, SourceArchive, false, false, &sum); err != nil {
					return err
				}
			}
			for _, src := range sources {
				if err := tx.RecordSource(SourceArchive, src.SourceURL, year, src.Gender, src.RowCount); err != nil {
					return err
				}
				if src.KildeURL != "" {
					logger.Info("archive file transcribed from", logger.Fields{
						"file": src.SourceURL, "kilde": src.KildeURL,
					})
				}
			}
			return nil
		})
		if err != nil {
			return sum, err
		}
		sum.Pages++
		logger.IncrCounter("sync.pages." + SourceArchive)
	}
	return sum, nil
}

// ingestPage rebuilds one source page inside a transaction: delete what was
// there, insert the fresh rows, record the source.
func (s *Syncer) ingestPage(sourceType, url string, season int, gender record.Gender, rows []record.Row, withComp, roadHint bool, sum *Summary) error {
	err := s.store.WithTx(func(tx *store.Tx) error {
		delGender := gender
		delSeason := season
		if sourceType == SourceRoad {
			// Road URLs are unique per season and gender already.
			delGender, delSeason = "", 0
		}
		if _, err := tx.DeleteBySource(url, delGender, delSeason); err != nil {
			return err
		}
		for _, row := range rows {
			if err := s.ingestRow(tx, row, sourceType, withComp, roadHint, sum); err != nil {
				return err
			}
		}
		return tx.RecordSource(sourceType, url, season, gender, len(rows))
	})
	if err != nil {
		return err
	}
	sum.Pages++
	logger.IncrCounter("sync.pages." + sourceType)
	return nil
}

// ingestRow maps one parsed row onto the store: scoring code, orientation,
// normalized performance, points, then the upsert chain.
func (s *Syncer) ingestRow(tx *store.Tx, row record.Row, sourceType string, withComp, roadHint bool, sum *Summary) error {
	sum.RowsSeen++

	known, err := s.eventNames(row.Gender)
	if err != nil {
		return err
	}
	code, mapped := eventname.ScoringCode(row.EventLabel, row.Gender, known)

	orientation := eventname.InferOrientation(row.EventLabel)
	if mapped {
		if meta, metaErr := s.calc.EventMeta(row.Gender, code); metaErr == nil && meta != nil && meta.Orientation != "" {
			orientation = perf.Orientation(meta.Orientation)
		}
	}

	if err := tx.UpsertAthlete(row.AthleteID, row.Gender, row.AthleteName, row.BirthDate, row.Nationality); err != nil {
		return err
	}
	clubID, err := tx.GetOrCreateClub(row.ClubName)
	if err != nil {
		return err
	}
	eventID, err := tx.GetOrCreateEvent(row.Gender, row.EventLabel, code, string(orientation))
	if err != nil {
		return err
	}

	var compID *int64
	if withComp && row.CompID != 0 {
		if err := tx.UpsertCompetition(row.CompID, row.CompName, row.VenueCity, row.Stadium); err != nil {
			return err
		}
		id := row.CompID
		compID = &id
	}

	// Halvmaraton lists normalize as long road times even before the
	// scoring tables know the event.
	hint := code
	if !mapped && roadHint && strings.HasPrefix(strings.ToLower(row.EventLabel), "halvmaraton") {
		hint = "HM"
	}
	norm := perf.Normalize(row.CleanPerf, orientation, hint)

	var value *float64
	if v, ok := perf.ToValue(norm); ok {
		value = &v
	}

	var points *int
	var exact *bool
	waError := ""
	if mapped && norm != "" {
		score, scoreErr := s.calc.PointsFor(row.Gender, code, norm)
		if scoreErr != nil {
			sum.PointsFailed++
			waError = scoreErr.Error()
		} else {
			p := score.Points
			e := score.Exact
			points, exact = &p, &e
			sum.PointsOK++
		}
	} else {
		sum.PointsMissing++
	}

	err = tx.UpsertResult(store.Result{
		Season:          row.Season,
		Gender:          row.Gender,
		EventID:         eventID,
		AthleteID:       row.AthleteID,
		ClubID:          clubID,
		RankInList:      row.RankInList,
		PerformanceRaw:  perf.DisplayRaw(row.RawPerf, code, norm),
		PerformanceNorm: norm,
		Value:           value,
		Wind:            row.Wind,
		PlacementRaw:    row.Placement,
		CompetitionID:   compID,
		CompetitionName: row.CompName,
		VenueCity:       row.VenueCity,
		Stadium:         row.Stadium,
		ResultDate:      row.ResultDate,
		WaPoints:        points,
		WaExact:         exact,
		WaEvent:         code,
		WaError:         waError,
		SourceURL:       row.SourceURL,
		SourceType:      sourceType,
	})
	if err != nil {
		return err
	}
	sum.RowsInserted++
	return nil
}

func (s *Syncer) eventNames(g record.Gender) (map[string]bool, error) {
	if known, ok := s.eventsByGender[g]; ok {
		return known, nil
	}
	known, err := s.calc.EventNames(g)
	if err != nil {
		return nil, fmt.Errorf("loading scoring events for %s: %w", g, err)
	}
	s.eventsByGender[g] = known
	return known, nil
}

func (s *Syncer) politePause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func genders(g record.Gender) []record.Gender {
	if g == "" {
		return []record.Gender{record.Women, record.Men}
	}
	return []record.Gender{g}
}
