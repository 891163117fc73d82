package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pfrederiksen/friidrett-stats/internal/perf"
)

var (
	spaceRE     = regexp.MustCompile(`\s+`)
	windCellRE  = regexp.MustCompile(`^[+\-–−]?\s*\d+(?:[.,]\d+)?$`)
	placementRE = regexp.MustCompile(`^\(?\d+[A-Za-z0-9/.-]*\)?[A-Za-z0-9/.-]*$`)

	fullDateRE  = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2}$`)
	dateRangeRE = regexp.MustCompile(`^(\d{1,2})(?:/\d{1,2})\.(\d{1,2})$`)
	dayMonthRE  = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})$`)
	birthFixRE  = regexp.MustCompile(`^(\d{1,2}\.\d{1,2})\s+(\d{2})$`)
)

// normCell flattens a table cell to single-spaced text; legacy Word HTML is
// full of non-breaking spaces and stray newlines.
func normCell(text string) string {
	s := strings.NewReplacer(" ", " ", "\r", " ", "\n", " ").Replace(text)
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

func looksLikeWind(text string) bool {
	s := strings.NewReplacer("−", "-", "–", "-", "—", "-").Replace(normCell(text))
	if s == "" || s == "-" {
		return false
	}
	return windCellRE.MatchString(s)
}

func parseWind(text string) *float64 {
	s := strings.NewReplacer("−", "-", "–", "-", "—", "-").Replace(normCell(text))
	if s == "" || s == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

func looksLikePlacement(text string) bool {
	s := normCell(text)
	if s == "" || looksLikeWind(s) {
		return false
	}
	return placementRE.MatchString(s)
}

// parseBirthDate handles dd.mm.yy births, also repairing the "dd.mm yy"
// variant some legacy pages print.
func parseBirthDate(text string) string {
	s := normCell(text)
	if s == "" {
		return ""
	}
	s = birthFixRE.ReplaceAllString(s, "$1.$2")
	iso, ok := perf.ParseDayMonthYear(s, 0)
	if !ok {
		return ""
	}
	return iso
}

// parseResultDate handles the result-date grammars of the legacy pages:
// dd.mm.yy, day ranges like "28/29.07" (first day wins) and bare dd.mm
// completed with the season year.
func parseResultDate(text string, season int) string {
	s := strings.TrimSuffix(normCell(text), ".")
	if s == "" {
		return ""
	}

	if fullDateRE.MatchString(s) {
		iso, ok := perf.ParseDayMonthYear(s, 0)
		if !ok {
			return ""
		}
		return iso
	}
	if m := dateRangeRE.FindStringSubmatch(s); m != nil {
		return isoDate(season, m[2], m[1])
	}
	if m := dayMonthRE.FindStringSubmatch(s); m != nil {
		return isoDate(season, m[2], m[1])
	}
	return ""
}

func isoDate(year int, month, day string) string {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 {
		return ""
	}
	t := time.Date(year, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, m, d)
}

// splitNameAndClub splits "Hansen Ole, IL Tyr" on the first comma. Cells
// without letters (placeholder dashes) yield no name.
func splitNameAndClub(text string) (name, club string) {
	s := normCell(text)
	if s == "" || !containsLetter(s) {
		return "", ""
	}
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

func cleanVenue(text string) string {
	return strings.TrimSpace(strings.TrimSuffix(normCell(text), ","))
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
