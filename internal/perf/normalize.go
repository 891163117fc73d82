package perf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Orientation says which direction is better for an event.
type Orientation string

const (
	// Lower means a smaller value is better (times).
	Lower Orientation = "lower"
	// Higher means a larger value is better (distances, points).
	Higher Orientation = "higher"
)

var (
	plainNumberRE  = regexp.MustCompile(`^[0-9]+(?:[.,][0-9]+)?$`)
	roadKmRE       = regexp.MustCompile(`^(\d+)\s*km\b`)
	walkKmRE       = regexp.MustCompile(`^(\d+)km\s+W$`)
	walkMetersRE   = regexp.MustCompile(`^(\d{1,3}(?:,\d{3})*)mW$`)
	walkAnyMRE     = regexp.MustCompile(`^(\d[\d,]*)mW$`)
	trackMetersRE  = regexp.MustCompile(`^(\d[\d,]*)m(?:\s+SC)?$`)
	longEventNames = map[string]bool{
		"Marathon": true, "MarW": true, "HM": true, "HMW": true,
		"100 km": true, "100 Miles": true,
	}
	minSecEventNames = map[string]bool{
		"Marathon": true, "HM": true, "HMW": true, "MarW": true,
		"Mile": true, "2 Miles": true,
	}
)

// Normalize makes a cleaned performance parseable for scoring and numeric
// comparison. For Lower-orientation (time) events it resolves dot/comma
// separator ambiguity into h:mm:ss.cc or m:ss.cc forms, using the scoring
// event code as a hint for whether hours are plausible. For Higher events it
// only standardizes the decimal separator.
func Normalize(performance string, orientation Orientation, scoringEvent string) string {
	text := strings.TrimSpace(performance)
	if text == "" {
		return ""
	}
	if orientation == Lower {
		return normalizeTimeLike(text, scoringEvent)
	}
	if plainNumberRE.MatchString(text) {
		return strings.ReplaceAll(text, ",", ".")
	}
	return text
}

// Time-like strings appear as:
//
//	1,05,71  => 1:05.71
//	11,15,59 => 11:15.59
//	1,12,54  => 1:12:54   (long events)
//	2.22,28  => 2:22.28
func normalizeTimeLike(text, scoringEvent string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	// Dot-separated segments (e.g. 29.11.45 => 29:11.45).
	if !strings.Contains(text, ":") && !strings.Contains(text, ",") && strings.Count(text, ".") >= 2 {
		if nums, ok := splitDigits(text, "."); ok {
			if out := joinSegments(nums, eventLikelyHasHours(scoringEvent)); out != "" {
				return out
			}
		}
	}

	// Single-dot format can mean mm.ss (e.g. 15.45 => 15:45) on minute-based events.
	if !strings.Contains(text, ":") && !strings.Contains(text, ",") && strings.Count(text, ".") == 1 && scoringEvent != "" {
		parts := strings.Split(text, ".")
		if len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) && len(parts[1]) == 2 {
			if b, _ := strconv.Atoi(parts[1]); eventLikelyMinSec(scoringEvent) && b <= 59 {
				a, _ := strconv.Atoi(parts[0])
				return fmt.Sprintf("%d:%02d", a, b)
			}
		}
	}

	// Dot-separated segments plus a decimal comma (e.g. 2.22,28).
	if !strings.Contains(text, ":") && strings.Contains(text, ".") && strings.Count(text, ",") == 1 {
		text = strings.ReplaceAll(text, ".", ":")
		return strings.ReplaceAll(text, ",", ".")
	}

	// Comma-separated segments (e.g. 11,05,98 or 1,12,54).
	if !strings.Contains(text, ":") && !strings.Contains(text, ".") && strings.Count(text, ",") >= 2 {
		if nums, ok := splitDigits(text, ","); ok {
			if out := joinSegments(nums, eventLikelyHasHours(scoringEvent)); out != "" {
				return out
			}
		}
	}

	// Single comma decimal (e.g. 7,48), or m,ss on minute-based events.
	if !strings.Contains(text, ":") && !strings.Contains(text, ".") && strings.Count(text, ",") == 1 {
		parts := strings.Split(text, ",")
		if len(parts) == 2 && isDigits(parts[0]) && isDigits(parts[1]) {
			b, _ := strconv.Atoi(parts[1])
			if scoringEvent != "" && eventLikelyMinSec(scoringEvent) && b <= 59 && len(parts[1]) == 2 {
				a, _ := strconv.Atoi(parts[0])
				return fmt.Sprintf("%d:%02d", a, b)
			}
		}
		return strings.ReplaceAll(text, ",", ".")
	}

	return strings.ReplaceAll(text, ",", ".")
}

// joinSegments renders 3 or 4 numeric segments as a time string. With hours
// plausible and segments in range, three segments read h:mm:ss instead of
// m:ss.cc.
func joinSegments(nums []int, hoursLikely bool) string {
	switch len(nums) {
	case 3:
		a, b, c := nums[0], nums[1], nums[2]
		if hoursLikely && a <= 9 && b <= 59 && c <= 59 {
			return fmt.Sprintf("%d:%02d:%02d", a, b, c)
		}
		return fmt.Sprintf("%d:%02d.%02d", a, b, c)
	case 4:
		return fmt.Sprintf("%d:%02d:%02d.%02d", nums[0], nums[1], nums[2], nums[3])
	}
	return ""
}

func splitDigits(text, sep string) ([]int, bool) {
	var nums []int
	for _, p := range strings.Split(text, sep) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !isDigits(p) {
			return nil, false
		}
		n, _ := strconv.Atoi(p)
		nums = append(nums, n)
	}
	return nums, len(nums) > 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// eventLikelyHasHours reports whether results in the scoring event plausibly
// exceed one hour (marathon, long walks, 10 km+ road races).
func eventLikelyHasHours(scoringEvent string) bool {
	if scoringEvent == "" {
		return false
	}
	if longEventNames[scoringEvent] {
		return true
	}
	if m := roadKmRE.FindStringSubmatch(scoringEvent); m != nil {
		km, _ := strconv.Atoi(m[1])
		return km >= 10
	}
	if m := walkKmRE.FindStringSubmatch(scoringEvent); m != nil {
		km, _ := strconv.Atoi(m[1])
		return km >= 10
	}
	if m := walkMetersRE.FindStringSubmatch(scoringEvent); m != nil {
		meters, _ := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		return meters >= 10000
	}
	return false
}

// eventLikelyMinSec reports whether a two-segment value on this event is a
// minutes:seconds reading rather than seconds with decimals.
func eventLikelyMinSec(scoringEvent string) bool {
	if minSecEventNames[scoringEvent] {
		return true
	}
	if roadKmRE.MatchString(scoringEvent) || walkKmRE.MatchString(scoringEvent) {
		return true
	}
	if walkAnyMRE.MatchString(scoringEvent) {
		return true
	}
	// Track distances from 600m up (and steeplechase) are minute-based.
	if m := trackMetersRE.FindStringSubmatch(scoringEvent); m != nil {
		meters, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return false
		}
		return meters >= 600
	}
	return false
}

// ToValue folds a normalized performance into a single sortable float:
// colon-separated segments as base 60 (hours*3600 + minutes*60 + seconds),
// anything else as a plain float. Unparseable input returns false; the row
// must be dropped, never misranked.
func ToValue(clean string) (float64, bool) {
	text := strings.TrimSpace(clean)
	if text == "" {
		return 0, false
	}
	text = strings.ReplaceAll(text, ",", ".")
	seconds := 0.0
	for _, part := range strings.Split(text, ":") {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		seconds = seconds*60 + f
	}
	return seconds, true
}
