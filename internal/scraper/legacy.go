package scraper

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pfrederiksen/friidrett-stats/internal/eventname"
	"github.com/pfrederiksen/friidrett-stats/internal/identity"
	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// IdentityFamily is the source family key hashed into synthetic athlete IDs
// for the federation pages and archive files. Changing it would re-mint every
// synthetic identity.
const IdentityFamily = "friidrett"

// ParseLegacy parses the federation's old Word-HTML year-statistics pages
// into best-per-athlete rows per event. Unrecognized document shells (PDF
// links that went stale, login redirects, not-found pages) yield no rows so
// sync runs can continue past them.
func ParseLegacy(htmlBytes []byte, season int, gender record.Gender, sourceURL string) ([]record.Row, error) {
	if bytes.HasPrefix(bytes.TrimLeft(htmlBytes, " \t\r\n"), []byte("%PDF")) {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	if looksLikeNotFoundPage(doc) {
		return nil, nil
	}

	var out []record.Row
	doc.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		label, _, ok := eventname.Canonical(normCell(h2.Text()), gender)
		if !ok {
			return
		}

		// A section can hold a records table ahead of the results table;
		// parse every candidate and keep the one with the most valid rows.
		var best []record.Row
		for _, table := range tablesUntilNextHeading(h2) {
			parsed := parseLegacyTable(table, season, gender, label, sourceURL)
			if len(parsed) > len(best) {
				best = parsed
			}
		}
		out = append(out, best...)
	})
	if len(out) > 0 {
		return out, nil
	}

	// Some pages (notably 2008 women's throws) have a single big table with
	// heading-like rows instead of h2 sections.
	return parseSectionedTablePage(doc, season, gender, sourceURL), nil
}

func looksLikeNotFoundPage(doc *goquery.Document) bool {
	title := strings.ToLower(normCell(doc.Find("title").Text()))
	if strings.Contains(title, "vi fant ikke siden") {
		return true
	}
	body := strings.ToLower(normCell(doc.Find("body").Text()))
	return strings.Contains(body, "microsoftonline.com") && strings.Contains(body, "oauth2/authorize")
}

// tablesUntilNextHeading walks the siblings after an h2 and collects tables
// (directly or nested) until the next h2.
func tablesUntilNextHeading(h2 *goquery.Selection) []*goquery.Selection {
	var tables []*goquery.Selection
	seen := make(map[*html.Node]bool)

	for sib := h2.Next(); sib.Length() > 0; sib = sib.Next() {
		if goquery.NodeName(sib) == "h2" {
			break
		}
		candidates := sib.Find("table")
		if goquery.NodeName(sib) == "table" {
			candidates = sib
		}
		candidates.Each(func(_ int, t *goquery.Selection) {
			node := t.Get(0)
			if !seen[node] {
				seen[node] = true
				tables = append(tables, t)
			}
		})
	}
	return tables
}

func parseLegacyTable(table *goquery.Selection, season int, gender record.Gender, label, sourceURL string) []record.Row {
	var out []record.Row
	seen := make(map[int64]bool)
	idctx := identity.NewContext(IdentityFamily, gender)
	rank := 0

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return
		}
		row, ok := parseLegacyCells(cells, season, idctx)
		if !ok {
			return
		}

		// Legacy lists are already best-per-athlete; a repeated identity is
		// a records-table artifact.
		if seen[row.AthleteID] {
			return
		}
		seen[row.AthleteID] = true
		rank++

		row.Season = season
		row.Gender = gender
		row.EventLabel = label
		row.RankInList = rank
		row.SourceURL = sourceURL
		out = append(out, row)
	})
	return out
}

// parseSectionedTablePage scans every table for heading-like rows that open
// event sections, keeping the table that yields the most rows.
func parseSectionedTablePage(doc *goquery.Document, season int, gender record.Gender, sourceURL string) []record.Row {
	var best []record.Row
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		parsed := parseSectionedTable(table, season, gender, sourceURL)
		if len(parsed) > len(best) {
			best = parsed
		}
	})
	return best
}

func parseSectionedTable(table *goquery.Selection, season int, gender record.Gender, sourceURL string) []record.Row {
	var out []record.Row
	seenByEvent := make(map[string]map[int64]bool)
	rankByEvent := make(map[string]int)
	ctxByEvent := make(map[string]*identity.Context)

	currentEvent := ""
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return
		}

		if heading := sectionHeading(cells); heading != "" {
			if label, _, ok := eventname.Canonical(heading, gender); ok {
				currentEvent = label
			} else {
				currentEvent = ""
			}
			return
		}
		if currentEvent == "" {
			return
		}

		idctx := ctxByEvent[currentEvent]
		if idctx == nil {
			idctx = identity.NewContext(IdentityFamily, gender)
			ctxByEvent[currentEvent] = idctx
		}

		row, ok := parseLegacyCells(cells, season, idctx)
		if !ok {
			return
		}

		if seenByEvent[currentEvent] == nil {
			seenByEvent[currentEvent] = make(map[int64]bool)
		}
		if seenByEvent[currentEvent][row.AthleteID] {
			return
		}
		seenByEvent[currentEvent][row.AthleteID] = true
		rankByEvent[currentEvent]++

		row.Season = season
		row.Gender = gender
		row.EventLabel = currentEvent
		row.RankInList = rankByEvent[currentEvent]
		row.SourceURL = sourceURL
		out = append(out, row)
	})
	return out
}

// sectionHeading returns the heading text when a row looks like a section
// header: a single non-empty alphabetic cell, or an alphabetic first cell
// with every other cell empty.
func sectionHeading(cells []string) string {
	var nonEmpty []string
	for _, c := range cells {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}
	if len(nonEmpty) == 1 && containsLetter(nonEmpty[0]) {
		return nonEmpty[0]
	}
	return ""
}

// parseLegacyCells extracts one result row from a legacy table row. The
// column layout varies, so the athlete cell is located heuristically and the
// remaining fields positionally relative to it.
func parseLegacyCells(cells []string, season int, idctx *identity.Context) (record.Row, bool) {
	cleaned, ok := perf.Clean(cells[0])
	if !ok || !containsDigit(cleaned.Clean) {
		return record.Row{}, false
	}

	hasWind := len(cells) >= 2 && looksLikeWind(cells[1])
	var wind *float64
	if hasWind {
		wind = parseWind(cells[1])
	}

	idxAth, ok := guessAthleteIndex(cells, hasWind, idctx.LastFull() != nil)
	if !ok || idxAth >= len(cells) {
		return record.Row{}, false
	}

	athleteCell := strings.TrimSpace(cells[idxAth])
	birthRaw := ""
	if idxAth+1 < len(cells) {
		birthRaw = strings.TrimSpace(cells[idxAth+1])
	}

	var (
		athleteName, clubName, birthISO string
		athleteID                       int64
	)
	if isAbbreviatedRepeat(athleteCell, birthRaw, idctx.LastFull() != nil) {
		full, id, err := idctx.ResolveAbbreviated(athleteCell)
		if err != nil {
			// Ambiguous or mismatched repeat: skip rather than guess.
			return record.Row{}, false
		}
		athleteName, clubName = full.Name, full.Club
		birthISO = parseBirthDate(birthRaw)
		if birthISO == "" {
			birthISO = full.Birth
		}
		athleteID = id
	} else {
		athleteName, clubName = splitNameAndClub(athleteCell)
		if athleteName == "" {
			return record.Row{}, false
		}
		birthISO = parseBirthDate(birthRaw)
		athleteID = idctx.ObserveFull(athleteName, clubName, birthISO)
	}

	placement := extractPlacement(cells, idxAth)
	resultDate, dateIdx := extractResultDate(cells, idxAth, season)
	compName, venueCity := extractCompAndVenue(cells, idxAth, dateIdx)

	return record.Row{
		RawPerf:     cleaned.Raw,
		CleanPerf:   cleaned.Clean,
		Wind:        wind,
		AthleteID:   athleteID,
		AthleteName: athleteName,
		ClubName:    clubName,
		BirthDate:   birthISO,
		Placement:   placement,
		VenueCity:   venueCity,
		CompName:    compName,
		ResultDate:  resultDate,
	}, true
}

func guessAthleteIndex(cells []string, hasWind, haveLastFull bool) (int, bool) {
	start := 1
	if hasWind {
		start = 2
	}
	for _, cand := range []int{start, start + 1} {
		if cand < len(cells) && isLikelyAthleteCell(cells[cand], haveLastFull) {
			return cand, true
		}
	}
	// Odd column layouts: scan only the early columns, before venue/date.
	limit := len(cells)
	if limit > 6 {
		limit = 6
	}
	for cand := 1; cand < limit; cand++ {
		if isLikelyAthleteCell(cells[cand], haveLastFull) {
			return cand, true
		}
	}
	return 0, false
}

func isLikelyAthleteCell(text string, haveLastFull bool) bool {
	s := normCell(text)
	if s == "" || !containsLetter(s) {
		return false
	}
	if looksLikeWind(s) || looksLikePlacement(s) {
		return false
	}
	if strings.Contains(s, ",") {
		return true
	}
	if len(strings.Fields(s)) >= 2 {
		return true
	}
	return haveLastFull && identity.LooksAbbreviated(s)
}

func isAbbreviatedRepeat(athleteCell, birthRaw string, haveLastFull bool) bool {
	if !haveLastFull || birthRaw != "" {
		return false
	}
	s := normCell(athleteCell)
	if strings.Contains(s, ",") {
		return false
	}
	return identity.LooksAbbreviated(s)
}

func extractPlacement(cells []string, idxAth int) string {
	if idxAth > 1 && looksLikePlacement(cells[idxAth-1]) {
		return normCell(cells[idxAth-1])
	}
	if idxAth+2 < len(cells) && looksLikePlacement(cells[idxAth+2]) {
		return normCell(cells[idxAth+2])
	}
	return ""
}

func extractResultDate(cells []string, idxAth, season int) (string, int) {
	for i := idxAth + 2; i < len(cells); i++ {
		if parsed := parseResultDate(cells[i], season); parsed != "" {
			return parsed, i
		}
	}
	return "", -1
}

// extractCompAndVenue reads the cells between the athlete block and the date
// cell: the last non-placement one is the venue, the one before it the
// competition.
func extractCompAndVenue(cells []string, idxAth, dateIdx int) (comp, venue string) {
	if dateIdx < 0 {
		return "", ""
	}
	var nonPlace []int
	for i := idxAth + 2; i < dateIdx; i++ {
		if normCell(cells[i]) == "" {
			continue
		}
		if !looksLikePlacement(cells[i]) {
			nonPlace = append(nonPlace, i)
		}
	}
	if len(nonPlace) == 0 {
		return "", ""
	}
	venueIdx := nonPlace[len(nonPlace)-1]
	venue = cleanVenue(cells[venueIdx])
	if len(nonPlace) > 1 {
		comp = normCell(cells[nonPlace[len(nonPlace)-2]])
	}
	return comp, venue
}

func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Find("td, th").Each(func(_ int, c *goquery.Selection) {
		cells = append(cells, normCell(c.Text()))
	})
	return cells
}
