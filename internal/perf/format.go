package perf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a comparable value in Norwegian display style: times for
// Lower orientation, decimals otherwise.
func FormatValue(value float64, orientation Orientation, decimals int) string {
	if orientation == Lower {
		return FormatTime(value, decimals)
	}
	return FormatDecimal(value, decimals)
}

// FormatDecimal renders a plain value with a comma decimal separator.
func FormatDecimal(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if decimals == 0 {
		return strconv.Itoa(int(math.Round(value)))
	}
	text := strconv.FormatFloat(value, 'f', decimals, 64)
	return strings.ReplaceAll(text, ".", ",")
}

// FormatTime renders seconds in Norwegian display style:
//
//	< 60s:   ss,cc
//	>= 60s:  m,ss,cc
//	>= 1h:   h,mm,ss,cc
func FormatTime(seconds float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if seconds < 0 {
		seconds = 0
	}

	scale := 1
	for i := 0; i < precision; i++ {
		scale *= 10
	}
	total := int(math.Round(seconds * float64(scale)))

	totalSeconds := total / scale
	frac := total % scale

	hours := totalSeconds / 3600
	rem := totalSeconds % 3600
	minutes := rem / 60
	sec := rem % 60

	if precision > 0 {
		fracS := fmt.Sprintf("%0*d", precision, frac)
		switch {
		case hours > 0:
			return fmt.Sprintf("%d,%02d,%02d,%s", hours, minutes, sec, fracS)
		case minutes > 0:
			return fmt.Sprintf("%d,%02d,%s", minutes, sec, fracS)
		default:
			return fmt.Sprintf("%d,%s", sec, fracS)
		}
	}

	switch {
	case hours > 0:
		return fmt.Sprintf("%d,%02d,%02d", hours, minutes, sec)
	case minutes > 0:
		return fmt.Sprintf("%d,%02d", minutes, sec)
	default:
		return strconv.Itoa(sec)
	}
}
