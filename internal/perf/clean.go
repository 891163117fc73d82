package perf

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	windRE            = regexp.MustCompile(`\(([+-]\d+(?:,\d+)?)\)`)
	parensRE          = regexp.MustCompile(`\([^)]*\)`)
	handTimedRE       = regexp.MustCompile(`^(.+?)\s*[hH]$`)
	trailingLettersRE = regexp.MustCompile(`^(.+?)\s*[A-Za-z]{1,3}$`)
	digitHyphenRE     = regexp.MustCompile(`(\d)[-–](\d)`)
	doubleCommaRE     = regexp.MustCompile(`,{2,}`)
	doubleDotRE       = regexp.MustCompile(`\.{2,}`)
	spacesRE          = regexp.MustCompile(`\s+`)
)

// minuteMarkers maps the apostrophe-like glyphs some sources use as a minute
// separator (e.g. 1´11,50) onto a plain colon.
var minuteMarkers = strings.NewReplacer(
	"´", ":", // acute accent
	"′", ":", // prime
	"’", ":", // right single quote
	"‘", ":", // left single quote
	"ʼ", ":", // modifier letter apostrophe
	"'", ":",
)

// CleanPerformance is the outcome of the first normalization stage.
type CleanPerformance struct {
	Raw   string
	Clean string
	Wind  *float64
}

// Clean strips wind readings and annotations from a raw performance token and
// repairs the separator glitches seen across sources. It returns false for
// empty tokens and placeholder markers like "-----".
func Clean(rawValue string) (CleanPerformance, bool) {
	raw := strings.TrimSpace(rawValue)
	if raw == "" || raw == "-----" {
		return CleanPerformance{}, false
	}

	var wind *float64
	if m := windRE.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64); err == nil {
			wind = &v
		}
	}

	clean := strings.TrimSpace(windRE.ReplaceAllString(raw, ""))

	// Other annotations like "(ok)" carry no comparable information.
	clean = strings.TrimSpace(parensRE.ReplaceAllString(clean, ""))

	clean = minuteMarkers.Replace(clean)

	// Some road-statistics tables use "-" or "–" between digits as a time
	// separator, e.g. "3.33-07". Normalize to dots so the time stage can
	// handle them uniformly.
	clean = digitHyphenRE.ReplaceAllString(clean, "$1.$2")

	// Hand-timed suffix.
	if m := handTimedRE.FindStringSubmatch(clean); m != nil {
		clean = strings.TrimSpace(m[1])
	}

	// Other short suffixes like "mx", "A", only when a numeric prefix remains.
	if m := trailingLettersRE.FindStringSubmatch(clean); m != nil && containsDigit(m[1]) {
		clean = strings.TrimSpace(m[1])
	}

	// Trailing junk such as "+" or a dangling comma; the original stays in Raw.
	for clean != "" && !unicode.IsDigit(rune(clean[len(clean)-1])) {
		clean = strings.TrimSpace(clean[:len(clean)-1])
	}

	// Leading junk, seen rarely (e.g. ",´11,50" in source HTML).
	if clean != "" && !unicode.IsDigit(rune(clean[0])) && containsDigit(clean) {
		for clean != "" && !unicode.IsDigit(rune(clean[0])) {
			clean = strings.TrimSpace(clean[1:])
		}
	}

	clean = doubleCommaRE.ReplaceAllString(clean, ",")
	clean = doubleDotRE.ReplaceAllString(clean, ".")
	clean = spacesRE.ReplaceAllString(clean, " ")

	return CleanPerformance{Raw: raw, Clean: clean, Wind: wind}, true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
