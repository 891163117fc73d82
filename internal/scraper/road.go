package scraper

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/friidrett-stats/internal/identity"
	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// RoadIdentityFamily keys synthetic IDs for road-list athletes, who carry at
// most a birth year and so can never be matched against track identities.
const RoadIdentityFamily = "kondis"

var roadMonths = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "mai": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"sept": time.September, "okt": time.October, "nov": time.November,
	"des": time.December,
	// English month forms seen on a few pages.
	"may": time.May, "oct": time.October, "dec": time.December,
}

var (
	timeTokenRE   = regexp.MustCompile(`\d+(?:[:.,]\d{2}){1,3}(?:[A-Za-z]{1,3})?`)
	timeAtStartRE = regexp.MustCompile(`^\d+(?:[:.,]\d{2}){1,3}(?:[A-Za-z]{1,3})?`)
	dateTokenRE   = regexp.MustCompile(`(\d{1,2})\s*[.,]\s*([A-Za-zÆØÅæøå]{3,4})\b`)
	birthMarkerRE = regexp.MustCompile(`-(\d{2,4}|\?)\b`)
	birthAtEndRE  = regexp.MustCompile(`-(?:\d{2,4}|\?)\s*$`)
	rankPrefixRE  = regexp.MustCompile(`^(\d{1,4}(?:[.,]\d)?\.?)\s+([A-ZÆØÅ].+)$`)
	rankSubRE     = regexp.MustCompile(`^(\d{1,4})[.,]\d$`)
	rankDotRE     = regexp.MustCompile(`^(\d{1,4})\.$`)
	bareNumberRE  = regexp.MustCompile(`^\d{1,4}$`)
	birthYearRE   = regexp.MustCompile(`\s*-\s*(\d{2,4}|\?)\s*$`)
	footnoteRE    = regexp.MustCompile(`\(\s*\*\s*\)`)
	venueMarkRE   = regexp.MustCompile(`^\(\s*[*&]\s*\)`)
	birthCellRE   = regexp.MustCompile(`^-\d{2,4}`)
	isoRoadDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Markers ending the result list on text-shaped pages; everything after the
// earliest one is editorial boilerplate.
var preStopMarkers = []string{
	"andre under",
	"utarbeidet av",
	"basert på tilgjengelige opplysninger",
	"oppdatert",
}

// ParseRoad parses a Kondis national year list. Page layouts changed several
// times over the years, so three strategies run in order (table, pre block,
// plain text) and the first that yields rows wins.
func ParseRoad(htmlBytes []byte, page RoadPage) ([]record.Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	if rows := parseRoadTable(doc, page); len(rows) > 0 {
		return rows, nil
	}
	if rows := parseRoadPre(doc, page); len(rows) > 0 {
		return rows, nil
	}
	return parseRoadText(doc, page), nil
}

// parseRoadTable handles pages with a proper results table. The best table is
// the one with the most time-like rows; navigation tables never qualify.
func parseRoadTable(doc *goquery.Document, page RoadPage) []record.Row {
	table := pickBestRoadTable(doc)
	if table == nil {
		return nil
	}

	var out []record.Row
	autoRank := 0
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if allEmpty(cells) {
			return
		}
		if isRoadHeaderRow(cells) {
			return
		}
		autoRank++

		var (
			rank                  int
			athleteCell, timeCell string
			placement, comp       string
			venue, dateCell       string
		)

		switch {
		case !looksLikeTime(cells[0]):
			m := rankPrefixRE.FindStringSubmatch(cells[0])
			if len(cells) >= 3 && looksLikeTime(cells[1]) && !looksLikeTime(cells[2]) {
				// Compact shape: "1 Name" | time | race, with the rank
				// sometimes omitted entirely.
				if m != nil {
					rank = parseRankToken(m[1])
					athleteCell = strings.TrimSpace(m[2])
				} else {
					athleteCell = cells[0]
				}
				if rank == 0 {
					rank = autoRank
				}
				timeCell = cells[1]
				comp = cells[2]
				if len(cells) > 3 {
					dateCell = cells[3]
				}
				break
			}

			rank = parseRankToken(cells[0])
			if rank == 0 {
				rank = autoRank
			}

			// Wider tables put club, birth and venue columns between the
			// name and the result; locate the time column first.
			timeIdx := -1
			for idx := 2; idx < len(cells); idx++ {
				if looksLikeTime(cells[idx]) {
					timeIdx = idx
					break
				}
			}
			if timeIdx > 2 {
				preTime := cells[1:timeIdx]
				if len(preTime) >= 2 {
					venue = preTime[len(preTime)-1]
					preTime = preTime[:len(preTime)-1]
				}
				athleteCell = joinAthleteParts(preTime)
				timeCell = cells[timeIdx]
				if tm := timeAtStartRE.FindString(timeCell); tm != "" {
					timeCell = tm
				}
			} else {
				if len(cells) > 1 {
					athleteCell = cells[1]
				}
				if len(cells) > 2 {
					timeCell = cells[2]
				}
				if len(cells) > 3 {
					comp = cells[3]
				}
				if len(cells) > 4 {
					dateCell = cells[4]
				}
			}

		default:
			rank = autoRank
			timeCell = cells[0]
			if len(cells) > 1 {
				athleteCell = cells[1]
			}
			switch {
			case len(cells) == 4:
				venue = cells[2]
				dateCell = cells[3]
			case len(cells) >= 5:
				if _, err := strconv.Atoi(strings.TrimSpace(cells[2])); err == nil {
					placement = cells[2]
				} else {
					comp = cells[2]
				}
				venue = cells[3]
				dateCell = cells[4]
			}
		}

		row, ok := buildRoadRow(page, rank, athleteCell, timeCell, placement, comp, venue, dateCell)
		if ok {
			out = append(out, row)
		}
	})
	return out
}

func pickBestRoadTable(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := 0
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		score := 0
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			for _, c := range rowCells(tr) {
				if looksLikeTime(c) {
					score++
					break
				}
			}
		})
		if score > bestScore {
			bestScore = score
			best = table
		}
	})
	if bestScore < 3 {
		return nil
	}
	return best
}

func isRoadHeaderRow(cells []string) bool {
	for _, c := range cells {
		switch strings.ToLower(c) {
		case "navn", "name", "tid", "time":
			return true
		}
	}
	return false
}

// joinAthleteParts glues split name/club/birth columns back into
// "Name, Club -YY" form; birth cells like "-68" belong to the previous part.
func joinAthleteParts(parts []string) string {
	var pieces []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		stripped := strings.TrimSpace(strings.ReplaceAll(p, "(*)", ""))
		if birthCellRE.MatchString(stripped) && len(pieces) > 0 {
			pieces[len(pieces)-1] += " " + p
			continue
		}
		pieces = append(pieces, p)
	}
	return strings.Join(pieces, ", ")
}

// parseRoadPre handles pages where the whole list sits inside <pre> blocks as
// one run of text with rank markers separating entries.
func parseRoadPre(doc *goquery.Document, page RoadPage) []record.Row {
	var best []record.Row
	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		text := normCell(pre.Text())
		if text == "" {
			return
		}
		text = truncateAtStopMarker(text)
		entries := splitPreEntries(text)
		if len(entries) < 3 {
			return
		}

		var rows []record.Row
		for _, entry := range entries {
			row, ok := parsePreEntry(entry, page, len(rows)+1)
			if ok {
				rows = append(rows, row)
			}
		}
		if len(rows) > len(best) {
			best = rows
		}
	})
	return best
}

func truncateAtStopMarker(text string) string {
	low := strings.ToLower(text)
	cut := -1
	for _, marker := range preStopMarkers {
		if idx := strings.Index(low, marker); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut >= 0 {
		text = text[:cut]
	}
	return strings.Trim(text, " -–")
}

// splitPreEntries cuts a pre-block run of text at rank markers: a short
// number not glued to a preceding number or decimal, followed by spaces and
// an uppercase name. Needs at least two markers to count as a list.
func splitPreEntries(text string) []string {
	marks := preRankMarkers(text)
	if len(marks) < 2 {
		return nil
	}

	out := make([]string, 0, len(marks))
	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		chunk := strings.Trim(text[mark[1]:end], " ,;|-")
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// preRankMarkers returns [start, end) byte spans of rank markers. The end is
// where the athlete name begins.
func preRankMarkers(text string) [][2]int {
	runes := []rune(text)
	// Byte offset of each rune so spans can index the original string.
	offs := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		offs[i] = off
		off += len(string(r))
	}
	offs[len(runes)] = off

	var marks [][2]int
	for i := 0; i < len(runes); i++ {
		if !isASCIIDigit(runes[i]) {
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			if isASCIIDigit(prev) || prev == '.' || prev == ',' || prev == ':' {
				continue
			}
		}
		runEnd := i
		for runEnd < len(runes) && isASCIIDigit(runes[runEnd]) {
			runEnd++
		}
		if runEnd-i > 4 {
			i = runEnd - 1
			continue
		}
		k := runEnd
		if k < len(runes) && (runes[k] == '.' || runes[k] == ')') {
			k++
		}
		sp := k
		for sp < len(runes) && runes[sp] == ' ' {
			sp++
		}
		if sp == k || sp >= len(runes) {
			i = runEnd - 1
			continue
		}
		if !isUpperNorwegian(runes[sp]) {
			i = runEnd - 1
			continue
		}
		marks = append(marks, [2]int{offs[i], offs[sp]})
		i = sp - 1
	}
	return marks
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isUpperNorwegian(r rune) bool {
	return (r >= 'A' && r <= 'Z') || r == 'Æ' || r == 'Ø' || r == 'Å'
}

func parsePreEntry(entry string, page RoadPage, rank int) (record.Row, bool) {
	loc := timeTokenRE.FindStringIndex(entry)
	if loc == nil {
		return record.Row{}, false
	}
	athleteCell := strings.Trim(entry[:loc[0]], " ,;|-")
	timeCell := strings.TrimSpace(entry[loc[0]:loc[1]])
	after := strings.Trim(entry[loc[1]:], " ,;|-")
	if athleteCell == "" {
		return record.Row{}, false
	}
	return buildRoadRow(page, rank, athleteCell, timeCell, "", after, "", "")
}

// parseRoadText handles pages with results as loose text lines, either
// pipe-separated or space-separated, rank-first or time-first.
func parseRoadText(doc *goquery.Document, page RoadPage) []record.Row {
	var lines []string
	for _, ln := range strings.Split(strings.ReplaceAll(doc.Text(), " ", " "), "\n") {
		if ln = normCell(ln); ln != "" {
			lines = append(lines, ln)
		}
	}

	var out []record.Row
	autoRank := 0
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Bare numbers are page-break artifacts, not rows.
		if bareNumberRE.MatchString(line) {
			continue
		}

		// A time-first row ending in a birth marker with no date was split
		// over two lines; glue the venue/date line back on.
		if timeAtStartRE.MatchString(line) && birthAtEndRE.MatchString(line) && !dateTokenRE.MatchString(line) {
			if i+1 < len(lines) {
				next := lines[i+1]
				if !startsWithRankOrTime(next) && !bareNumberRE.MatchString(next) {
					line = line + " " + next
					i++
				}
			}
		}

		row, ok := parseRoadTextLine(line, page, &autoRank)
		if ok {
			out = append(out, row)
			if row.RankInList > autoRank {
				autoRank = row.RankInList
			}
		}
	}
	return out
}

func parseRoadTextLine(line string, page RoadPage, autoRank *int) (record.Row, bool) {
	if strings.Contains(line, "|") {
		return parseRoadPipeLine(line, page, autoRank)
	}
	return parseRoadSpaceLine(line, page, autoRank)
}

func parseRoadPipeLine(line string, page RoadPage, autoRank *int) (record.Row, bool) {
	var parts []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return record.Row{}, false
	}

	// Rank-first: "1 | Name -YY | 16.39 | Fornebuløpet".
	if rank, err := strconv.Atoi(parts[0]); err == nil && len(parts) >= 3 && timeTokenRE.MatchString(parts[2]) {
		dateISO, rest := extractDateAndRest(strings.Join(parts[3:], " "), page.Season)
		return buildRoadRow(page, rank, parts[1], parts[2], "", rest, "", dateISO)
	}

	// Time-first: "2.05.48r | Name -YY | Fukuoka, JPN | 03.des".
	if !timeAtStartRE.MatchString(parts[0]) {
		return record.Row{}, false
	}
	*autoRank++
	athleteCell := ""
	if len(parts) > 1 {
		athleteCell = parts[1]
	}
	dateISO, rest := extractDateAndRest(strings.Join(parts[2:], " "), page.Season)
	return buildRoadRow(page, *autoRank, athleteCell, parts[0], "", "", rest, dateISO)
}

func parseRoadSpaceLine(line string, page RoadPage, autoRank *int) (record.Row, bool) {
	// Rank-first: "1 Name, Club -YY 16.46 Race name" (also "1. Name ...").
	if m := rankPrefixRE.FindStringSubmatch(line); m != nil && !timeAtStartRE.MatchString(line) {
		rank := parseRankToken(m[1])
		if rank == 0 {
			rank = *autoRank + 1
		}
		rest := strings.TrimSpace(m[2])
		loc := timeTokenRE.FindStringIndex(rest)
		if loc == nil {
			return record.Row{}, false
		}
		athleteCell := strings.TrimSpace(rest[:loc[0]])
		timeCell := strings.TrimSpace(rest[loc[0]:loc[1]])
		after := strings.TrimSpace(rest[loc[1]:])
		dateISO, comp := extractDateAndRest(after, page.Season)
		return buildRoadRow(page, rank, athleteCell, timeCell, "", comp, "", dateISO)
	}

	// Time-first: "59.48r Name, Club -YY Valencia, ESP 22.okt".
	tm := timeAtStartRE.FindString(line)
	if tm == "" {
		return record.Row{}, false
	}
	*autoRank++
	rest := strings.TrimSpace(line[len(tm):])
	dateISO, rest := extractDateAndRest(rest, page.Season)
	athleteCell, venue := splitTimeFirstAthleteAndVenue(rest)
	return buildRoadRow(page, *autoRank, athleteCell, tm, "", "", venue, dateISO)
}

func startsWithRankOrTime(text string) bool {
	return timeAtStartRE.MatchString(text) || rankPrefixRE.MatchString(text)
}

// extractDateAndRest pulls the last valid date token out of text, returning
// the ISO date and the remaining text with the token removed.
func extractDateAndRest(text string, season int) (dateISO, rest string) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", ""
	}
	matches := dateTokenRE.FindAllStringIndex(s, -1)
	if matches == nil {
		return "", s
	}
	last := matches[len(matches)-1]
	parsed := parseRoadDate(s[last[0]:last[1]], season)
	if parsed == "" {
		return "", s
	}
	before := strings.TrimSpace(s[:last[0]])
	after := strings.TrimSpace(s[last[1]:])
	return parsed, strings.TrimSpace(before + " " + after)
}

// splitTimeFirstAthleteAndVenue splits "Name, Club -YY Venue" at the last
// birth marker; without one the whole string is the athlete.
func splitTimeFirstAthleteAndVenue(text string) (athlete, venue string) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", ""
	}
	marks := birthMarkerRE.FindAllStringIndex(s, -1)
	if marks == nil {
		return s, ""
	}
	last := marks[len(marks)-1]
	athlete = strings.TrimSpace(s[:last[1]])
	venue = strings.TrimSpace(s[last[1]:])
	venue = strings.TrimSpace(venueMarkRE.ReplaceAllString(venue, ""))
	venue = strings.TrimSpace(strings.TrimLeft(venue, "*"))
	venue = strings.TrimSpace(strings.TrimLeft(venue, ",-;/"))
	return athlete, venue
}

func looksLikeTime(text string) bool {
	return timeAtStartRE.MatchString(strings.TrimSpace(text))
}

// parseRankToken reads "36", "36." and tie sub-ranks like "36.1" (stored as
// the base rank). Returns 0 when the token is not a rank.
func parseRankToken(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if m := rankSubRE.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := rankDotRE.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// parseRoadDate reads "11.okt" / "27,apr" style tokens against the season
// year. Returns "" for anything unparseable or calendar-invalid.
func parseRoadDate(text string, season int) string {
	m := dateTokenRE.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ""
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	month, ok := roadMonths[strings.ToLower(m[2])]
	if !ok {
		return ""
	}
	d := time.Date(season, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return ""
	}
	return d.Format("2006-01-02")
}

// buildRoadRow assembles one result from the parsed fields. Rows without a
// cleanable time or athlete name are dropped.
func buildRoadRow(page RoadPage, rank int, athleteCell, timeCell, placement, comp, venue, dateCell string) (record.Row, bool) {
	cleaned, ok := perf.Clean(timeCell)
	if !ok || cleaned.Clean == "" {
		return record.Row{}, false
	}

	name, club, birthYear := parseRoadAthleteCell(athleteCell)
	if name == "" {
		return record.Row{}, false
	}

	yearKey := ""
	birthDate := ""
	if birthYear > 0 {
		yearKey = strconv.Itoa(birthYear)
		birthDate = fmt.Sprintf("%04d-01-01", birthYear)
	}
	id := identity.SyntheticID(RoadIdentityFamily, page.Gender, name, yearKey)

	dateISO := dateCell
	if dateISO != "" && !isoRoadDateRE.MatchString(dateISO) {
		dateISO = parseRoadDate(dateCell, page.Season)
	}

	return record.Row{
		Season:      page.Season,
		Gender:      page.Gender,
		EventLabel:  page.EventNo,
		RankInList:  rank,
		RawPerf:     cleaned.Raw,
		CleanPerf:   cleaned.Clean,
		Wind:        cleaned.Wind,
		AthleteID:   id,
		AthleteName: name,
		ClubName:    club,
		BirthDate:   birthDate,
		Placement:   normCell(placement),
		VenueCity:   normCell(venue),
		CompName:    normCell(comp),
		ResultDate:  dateISO,
		SourceURL:   page.URL,
	}, true
}

// parseRoadAthleteCell splits "Name, Club -YY" into its parts. Footnote
// markers are stripped; "-?" means the birth year is unknown.
func parseRoadAthleteCell(text string) (name, club string, birthYear int) {
	s := normCell(strings.ReplaceAll(text, " ", " "))
	if s == "" {
		return "", "", 0
	}
	s = strings.TrimSpace(footnoteRE.ReplaceAllString(s, ""))
	s = strings.TrimSpace(strings.TrimRight(s, "*"))
	s = normCell(s)

	if m := birthYearRE.FindStringSubmatchIndex(s); m != nil {
		token := s[m[2]:m[3]]
		if token != "?" {
			if yy, err := strconv.Atoi(token); err == nil {
				if yy < 100 {
					pivot := time.Now().Year() % 100
					if yy <= pivot {
						birthYear = 2000 + yy
					} else {
						birthYear = 1900 + yy
					}
				} else {
					birthYear = yy
				}
			}
		}
		s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s[:m[0]]), ","))
	}

	name = s
	if idx := strings.Index(s, ","); idx >= 0 {
		parts := strings.Split(s, ",")
		name = strings.TrimSpace(parts[0])
		var rest []string
		for _, p := range parts[1:] {
			if p = strings.TrimSpace(p); p != "" {
				rest = append(rest, p)
			}
		}
		club = strings.Join(rest, ", ")
	}
	return strings.TrimSpace(name), club, birthYear
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
