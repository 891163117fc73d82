package perf

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDayMonthYear parses a "dd.mm.yy" token into an ISO date, resolving the
// two-digit year against a pivot: years at or below the pivot are 20xx, the
// rest 19xx. pivot <= 0 means the current year's two-digit form. Four-digit
// years are taken verbatim.
func ParseDayMonthYear(value string, pivot int) (string, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return "", false
	}
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return "", false
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year2, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if pivot <= 0 {
		pivot = time.Now().Year() % 100
	}
	year := year2
	if year2 < 100 {
		year = 1900 + year2
		if year2 <= pivot {
			year = 2000 + year2
		}
	}
	if !validDate(year, month, day) {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
