package perf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	jumpCmRE        = regexp.MustCompile(`^\d{3,4}$`)
	mixedDotCommaRE = regexp.MustCompile(`^\d+\.\d{1,2},\d{1,2}$`)
)

// DisplayRaw adjusts the raw display string for storage. Jump events written
// in bare centimeters ("216") become meters ("2,16"), and mixed dot+comma
// long times keep the display aligned with the long-event reading of the
// normalized form ("3.12,43" -> "3.12.43"). All other input passes through.
func DisplayRaw(rawPerf, scoringEvent, normalizedPerf string) string {
	raw := strings.TrimSpace(rawPerf)
	if raw == "" {
		return rawPerf
	}

	norm := strings.TrimSpace(normalizedPerf)
	if norm != "" && mixedDotCommaRE.MatchString(raw) &&
		strings.Count(norm, ":") >= 2 && !strings.Contains(norm, ".") {
		return strings.ReplaceAll(norm, ":", ".")
	}

	if scoringEvent != "HJ" && scoringEvent != "PV" {
		return rawPerf
	}
	if strings.ContainsAny(raw, ".,:") {
		return rawPerf
	}
	if !jumpCmRE.MatchString(raw) {
		return rawPerf
	}
	cm, err := strconv.Atoi(raw)
	if err != nil {
		return rawPerf
	}
	if scoringEvent == "HJ" && (cm < 100 || cm > 280) {
		return rawPerf
	}
	if scoringEvent == "PV" && (cm < 100 || cm > 700) {
		return rawPerf
	}
	return strings.ReplaceAll(fmt.Sprintf("%.2f", float64(cm)/100), ".", ",")
}
