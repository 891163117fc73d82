package scraper

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pfrederiksen/friidrett-stats/internal/eventname"
	"github.com/pfrederiksen/friidrett-stats/internal/identity"
	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

// Archive files are hand-transcribed CSV-style .txt files covering seasons
// before the online statistics era. A file holds several event sections, each
// with an event header line, a column header line and data rows, separated by
// blank lines.

// ArchiveSourceURL is the stable per-file source reference written on every
// row. Delete-by-prefix during re-import relies on this exact shape.
func ArchiveSourceURL(season int, genderDir, filename string) string {
	return fmt.Sprintf("old_data:%d/%s/%s", season, genderDir, filename)
}

// ArchiveSourcePrefix matches every row ingested from one season's archive
// files.
func ArchiveSourcePrefix(season int) string {
	return fmt.Sprintf("old_data:%d/", season)
}

var colHeaderWords = map[string]bool{
	"rank_in_list": true, "athlete_name": true, "club_name": true,
	"performance_raw": true, "plassering": true, "utøver": true,
	"klubb": true, "resultat": true, "sted": true, "dato": true,
	"birth_date": true, "birth_year": true, "fødselsår": true,
	"fødselsdato": true, "venue_city": true,
}

var (
	nationalityRE = regexp.MustCompile(`\s*\(([A-Z]{2,3})\)\s*$`)
	yearOnlyRE    = regexp.MustCompile(`^\d{4}$`)
	leadingDashRE = regexp.MustCompile(`^[\d-]`)
	kildeURLRE    = regexp.MustCompile(`https?://\S+`)
)

// ArchiveFileSource describes one parsed archive file and the upstream page
// it was transcribed from, when a kilder/ note records one.
type ArchiveFileSource struct {
	SourceURL string
	KildeURL  string
	Gender    record.Gender
	RowCount  int
}

// ParseArchiveDir parses every .txt file for a season under
// dataDir/<season>/{menn,kvinner}/ and returns the rows plus a per-file
// source catalog.
func ParseArchiveDir(dataDir string, season int) ([]record.Row, []ArchiveFileSource, error) {
	seasonDir := filepath.Join(dataDir, fmt.Sprintf("%d", season))
	if _, err := os.Stat(seasonDir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var (
		rows    []record.Row
		sources []ArchiveFileSource
	)
	for _, sub := range []struct {
		dir    string
		gender record.Gender
	}{{"menn", record.Men}, {"kvinner", record.Women}} {
		genderDir := filepath.Join(seasonDir, sub.dir)
		entries, err := os.ReadDir(genderDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, nil, err
		}
		kildeURL := readKildeURL(genderDir)

		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			raw, err := os.ReadFile(filepath.Join(genderDir, name))
			if err != nil {
				return nil, nil, fmt.Errorf("reading %s: %w", name, err)
			}
			sourceURL := ArchiveSourceURL(season, sub.dir, name)
			parsed := ParseArchiveFile(string(raw), season, sub.gender, sourceURL)
			rows = append(rows, parsed...)
			sources = append(sources, ArchiveFileSource{
				SourceURL: sourceURL,
				KildeURL:  kildeURL,
				Gender:    sub.gender,
				RowCount:  len(parsed),
			})
		}
	}
	return rows, sources, nil
}

// readKildeURL returns the first URL found in kilder/*_kilde.txt, or "".
func readKildeURL(genderDir string) string {
	entries, err := os.ReadDir(filepath.Join(genderDir, "kilder"))
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "_kilde.txt") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(genderDir, "kilder", e.Name()))
		if err != nil {
			continue
		}
		if m := kildeURLRE.FindString(string(raw)); m != "" {
			return m
		}
	}
	return ""
}

// ParseArchiveFile parses one archive .txt file into result rows.
func ParseArchiveFile(text string, season int, gender record.Gender, sourceURL string) []record.Row {
	text = strings.TrimPrefix(text, "\ufeff")

	var out []record.Row
	prevEvent := ""
	for _, section := range splitArchiveSections(text) {
		label, handTimed, ok := resolveArchiveEvent(section.header, gender, prevEvent)
		if !ok {
			continue
		}
		hasDate := colHeaderHasDate(section.colHeader)
		out = append(out, parseArchiveSection(section.data, season, gender, label, hasDate, sourceURL)...)
		if !handTimed {
			prevEvent = label
		}
	}
	return out
}

type archiveSection struct {
	header    string // empty for unnamed continuation sections
	colHeader string
	data      []string
}

func splitArchiveSections(text string) []archiveSection {
	lines := strings.Split(text, "\n")
	var sections []archiveSection

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			i++
			continue
		}

		switch {
		case isColHeader(line):
			i++
			data := collectDataLines(lines, i)
			i += len(data)
			if len(data) > 0 {
				sections = append(sections, archiveSection{colHeader: line, data: data})
			}
		case isEventHeader(line):
			header := line
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			if i < len(lines) && isColHeader(strings.TrimSpace(lines[i])) {
				colHeader := strings.TrimSpace(lines[i])
				i++
				data := collectDataLines(lines, i)
				i += len(data)
				if len(data) > 0 {
					sections = append(sections, archiveSection{header: header, colHeader: colHeader, data: data})
				}
			}
		default:
			i++
		}
	}
	return sections
}

func collectDataLines(lines []string, start int) []string {
	var data []string
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}
		data = append(data, line)
	}
	return data
}

func isColHeader(line string) bool {
	low := strings.ToLower(line)
	if strings.Contains(low, "_in_list") {
		return true
	}
	hits := 0
	for _, p := range strings.Split(low, ",") {
		if colHeaderWords[strings.TrimSpace(p)] {
			hits++
		}
	}
	return hits >= 3
}

func isEventHeader(line string) bool {
	if line == "" || isColHeader(line) {
		return false
	}
	if leadingDashRE.MatchString(line) && strings.Contains(line, ",") {
		return false
	}
	return containsLetter(line)
}

func colHeaderHasDate(colHeader string) bool {
	for _, p := range strings.Split(strings.ToLower(colHeader), ",") {
		if strings.TrimSpace(p) == "dato" {
			return true
		}
	}
	return false
}

// resolveArchiveEvent canonicalizes the section header. An unnamed section
// directly after 5000 meter is the transcription convention for 10000 meter.
func resolveArchiveEvent(header string, gender record.Gender, prevEvent string) (string, bool, bool) {
	if header != "" {
		return eventname.Canonical(header, gender)
	}
	if strings.Contains(prevEvent, "5000 meter") {
		return "10000 meter", false, true
	}
	return "", false, false
}

func parseArchiveSection(dataLines []string, season int, gender record.Gender, label string, hasDate bool, sourceURL string) []record.Row {
	var out []record.Row
	seen := make(map[int64]bool)
	rank := 0
	prevClean := ""

	for _, line := range dataLines {
		fields, ok := splitArchiveRow(line)
		if !ok || len(fields) < 5 {
			continue
		}

		rankRaw := strings.TrimSpace(fields[0])
		// "-" marks guest entries outside the national list.
		if rankRaw == "-" {
			continue
		}

		name, nationality := splitNameAndNationality(strings.TrimSpace(fields[1]))
		if name == "" || !containsLetter(name) {
			continue
		}
		club := strings.TrimSpace(fields[2])
		birth := parseArchiveBirth(fields[3])

		var perfRaw, resultDate, venue string
		if hasDate {
			if len(fields) < 6 {
				continue
			}
			perfRaw = strings.TrimSpace(fields[len(fields)-1])
			resultDate = parseArchiveDate(fields[len(fields)-2], season)
			venue = joinNonEmpty(fields[4 : len(fields)-2])
		} else {
			perfRaw = strings.TrimSpace(fields[len(fields)-1])
			venue = joinNonEmpty(fields[4 : len(fields)-1])
		}

		cleaned, ok := perf.Clean(perfRaw)
		if !ok || !containsDigit(cleaned.Clean) {
			continue
		}

		id := identity.SyntheticID(IdentityFamily, gender, name, birth)
		if seen[id] {
			continue
		}
		seen[id] = true

		// Tied performances share a rank.
		if cleaned.Clean != prevClean {
			rank = len(out) + 1
			prevClean = cleaned.Clean
		}

		out = append(out, record.Row{
			Season:      season,
			Gender:      gender,
			EventLabel:  label,
			RankInList:  rank,
			RawPerf:     cleaned.Raw,
			CleanPerf:   cleaned.Clean,
			Wind:        cleaned.Wind,
			AthleteID:   id,
			AthleteName: name,
			ClubName:    club,
			BirthDate:   birth,
			Nationality: nationality,
			VenueCity:   venue,
			ResultDate:  resultDate,
			SourceURL:   sourceURL,
		})
	}
	return out
}

// splitArchiveRow splits a CSV line, shielding commas inside parentheses
// first so wind annotations like "(-0,6)" survive as one field.
func splitArchiveRow(line string) ([]string, bool) {
	var shielded strings.Builder
	depth := 0
	for _, ch := range line {
		switch {
		case ch == '(':
			depth++
			shielded.WriteRune(ch)
		case ch == ')':
			if depth > 0 {
				depth--
			}
			shielded.WriteRune(ch)
		case ch == ',' && depth > 0:
			shielded.WriteByte(0)
		default:
			shielded.WriteRune(ch)
		}
	}

	r := csv.NewReader(strings.NewReader(shielded.String()))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return nil, false
	}
	for i, f := range fields {
		fields[i] = strings.ReplaceAll(f, "\x00", ",")
	}
	return fields, true
}

// splitNameAndNationality strips a trailing country code: "John Doe (ETH)"
// yields ("John Doe", "ETH"). Domestic athletes carry no code.
func splitNameAndNationality(name string) (string, string) {
	if m := nationalityRE.FindStringSubmatchIndex(name); m != nil {
		return strings.TrimSpace(name[:m[0]]), name[m[2]:m[3]]
	}
	return strings.TrimSpace(name), ""
}

// parseArchiveBirth reads a birth cell: full date, bare "YYYY" kept as a
// year, or empty for unknown.
func parseArchiveBirth(text string) string {
	s := strings.TrimSpace(text)
	low := strings.ToLower(s)
	if s == "" || low == "ukjent" || low == "ukjent dato" {
		return ""
	}
	if iso, ok := perf.ParseDayMonthYear(s, 0); ok {
		return iso
	}
	if yearOnlyRE.MatchString(s) {
		return s
	}
	return ""
}

func parseArchiveDate(text string, season int) string {
	s := strings.TrimRight(strings.TrimSpace(text), ".")
	if s == "" {
		return ""
	}
	if iso, ok := perf.ParseDayMonthYear(s, 0); ok {
		return iso
	}
	if m := dayMonthRE.FindStringSubmatch(s); m != nil {
		return isoDate(season, m[2], m[1])
	}
	return ""
}

func joinNonEmpty(fields []string) string {
	var parts []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}
