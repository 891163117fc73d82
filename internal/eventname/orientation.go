package eventname

import (
	"regexp"
	"strings"

	"github.com/pfrederiksen/friidrett-stats/internal/perf"
)

var kmPrefixRE = regexp.MustCompile(`^\d+\s*km`)

var higherPrefixes = []string{
	"diskos", "kule", "slegge", "spyd", "vektkast",
	"lengde", "tresteg", "høyde", "stav",
}

// InferOrientation decides whether smaller or larger performance values rank
// first for an event label, used when the scoring database carries no
// orientation for the event.
func InferOrientation(label string) perf.Orientation {
	low := strings.ToLower(strings.TrimSpace(label))
	if low == "" {
		return perf.Higher
	}

	if strings.Contains(low, "gateløp") || strings.Contains(low, "landevei") {
		return perf.Lower
	}
	if kmPrefixRE.MatchString(low) {
		return perf.Lower
	}
	if strings.Contains(low, "halvmaraton") || strings.Contains(low, "half marathon") {
		return perf.Lower
	}
	if strings.HasPrefix(low, "maraton") || strings.HasPrefix(low, "marathon") {
		return perf.Lower
	}
	if strings.HasPrefix(low, "kappgang ") {
		return perf.Lower
	}
	if strings.Contains(low, " meter") || strings.Contains(low, "mile") {
		return perf.Lower
	}

	for _, p := range higherPrefixes {
		if strings.HasPrefix(low, p) {
			return perf.Higher
		}
	}
	if strings.Contains(low, "kamp") {
		return perf.Higher
	}
	return perf.Higher
}
