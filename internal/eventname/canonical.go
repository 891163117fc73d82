package eventname

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

var (
	handTimedMarkerRE = regexp.MustCompile(`(?i)(?:Manuell\s+tid|Håndtid)`)
	timingSuffixRE    = regexp.MustCompile(`\s*[–—-]\s*(?:Elektronisk|Manuell)`)
	englishParenRE    = regexp.MustCompile(`\s*\((?:High|Pole|Long|Triple|Shot|Discus|Hammer|Javelin|Decathlon|Heptathlon)`)
	dashSeparatorRE   = regexp.MustCompile(`\s+[–—-]\s+`)
	spaceRE           = regexp.MustCompile(`\s+`)

	trackMeterRE   = regexp.MustCompile(`^([\d ]+)\s*METER\b`)
	walkKmLabelRE  = regexp.MustCompile(`^KAPPGANG\s+(\d+)\s*KM\b`)
	walkMLabelRE   = regexp.MustCompile(`^KAPPGANG\s+(\d+)\s*METER\b`)
	roadKmLabelRE  = regexp.MustCompile(`^(\d+)\s*KM\b`)
	tenCombinedRE  = regexp.MustCompile(`^10[\s-]*KAMP`)
	sevenCombineRE = regexp.MustCompile(`^7[\s-]*KAMP`)
	fiveCombinedRE = regexp.MustCompile(`^5[\s-]*KAMP`)
)

// hurdleHeights gives the standard senior hurdle height per gender and
// distance, as printed in canonical names.
var hurdleHeights = map[record.Gender]map[int]string{
	record.Women: {60: "84,0", 100: "84,0", 200: "76,2", 300: "76,2", 400: "76,2"},
	record.Men:   {60: "106,7", 110: "106,7", 200: "76,2", 300: "91,4", 400: "91,4"},
}

var steepleHeights = map[record.Gender]map[int]string{
	record.Women: {2000: "76,2", 3000: "76,2"},
	record.Men:   {2000: "91,4", 3000: "91,4"},
}

// Canonical maps a free-text event label to the stable event name results are
// stored under. handTimed marks labels explicitly flagged as manually timed;
// ok is false for labels that are not recognizable events (navigation text,
// section junk, relay carnival headings).
func Canonical(label string, gender record.Gender) (name string, handTimed bool, ok bool) {
	text := normalizeLabel(label)
	if text == "" {
		return "", false, false
	}

	handTimed = handTimedMarkerRE.MatchString(text)

	// Strip timing-method suffix and English descriptions before the generic
	// truncation, so the markers above are still visible.
	text = timingSuffixRE.Split(text, 2)[0]
	text = englishParenRE.Split(text, 2)[0]

	// Everything after the first "(", a dash separator, or a "/" is notes,
	// standards or alternate-language text.
	if i := strings.Index(text, "("); i >= 0 {
		text = text[:i]
	}
	text = dashSeparatorRE.Split(text, 2)[0]
	text = strings.SplitN(text, "/", 2)[0]
	text = normalizeLabel(text)

	upper := strings.ToUpper(text)

	// Combined events.
	flat := strings.ReplaceAll(upper, "-", " ")
	switch {
	case strings.HasPrefix(flat, "KAST 5 KAMP"):
		return "Kast 5 Kamp (Slegge-Kule-Diskos-Spyd-Vektkast)", false, true
	case tenCombinedRE.MatchString(upper):
		return "10 kamp", false, true
	case sevenCombineRE.MatchString(upper):
		return "7 kamp", false, true
	case fiveCombinedRE.MatchString(upper):
		return "5 kamp", false, true
	}

	// Jumps.
	switch {
	case strings.HasPrefix(upper, "HØYDE"), strings.HasPrefix(upper, "HOYDE"):
		return "Høyde", false, true
	case strings.HasPrefix(upper, "STAV"):
		return "Stav", false, true
	case strings.HasPrefix(upper, "LENGDE"):
		return "Lengde", false, true
	case strings.HasPrefix(upper, "TRESTEG"):
		return "Tresteg", false, true
	}

	// Throws: the same implement name canonicalizes to different strings per
	// gender because the standard weights differ.
	switch {
	case strings.HasPrefix(upper, "KULE"):
		return pick(gender, "Kule 7,26kg", "Kule 4,0kg"), false, true
	case strings.HasPrefix(upper, "DISKOS"):
		return pick(gender, "Diskos 2,0kg", "Diskos 1,0kg"), false, true
	case strings.HasPrefix(upper, "SLEGGE"):
		return pick(gender, "Slegge 7,26kg/121,5cm", "Slegge 4,0kg/119,5cm"), false, true
	case strings.HasPrefix(upper, "SPYD"):
		return pick(gender, "Spyd 800gram", "Spyd 600gram"), false, true
	case strings.HasPrefix(upper, "SUPERVEKTKAST"):
		return pick(gender, "SuperVektKast 25,4Kg", "SuperVektKast 15,88Kg"), false, true
	case strings.HasPrefix(upper, "VEKTKAST"):
		return pick(gender, "VektKast 15,88Kg", "VektKast 9,08Kg"), false, true
	}

	// Race walk.
	if m := walkKmLabelRE.FindStringSubmatch(upper); m != nil {
		km, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("Kappgang %d km", km), false, true
	}
	if m := walkMLabelRE.FindStringSubmatch(upper); m != nil {
		meters, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("Kappgang %d meter", meters), false, true
	}

	// Track: distance, hurdles, steeplechase.
	if m := trackMeterRE.FindStringSubmatch(upper); m != nil {
		num, _ := strconv.Atoi(strings.ReplaceAll(m[1], " ", ""))
		switch {
		case strings.Contains(upper, "HEKK"):
			if handTimed {
				return fmt.Sprintf("%d meter hekk (Håndtid)", num), true, true
			}
			if h, found := hurdleHeights[gender][num]; found {
				return fmt.Sprintf("%d meter hekk (%scm)", num, h), false, true
			}
			return fmt.Sprintf("%d meter hekk", num), false, true
		case strings.Contains(upper, "HINDER"):
			if h, found := steepleHeights[gender][num]; found {
				return fmt.Sprintf("%d meter hinder (%scm)", num, h), false, true
			}
			return fmt.Sprintf("%d meter hinder", num), false, true
		}
		if handTimed {
			return fmt.Sprintf("%d meter (Håndtid)", num), true, true
		}
		return fmt.Sprintf("%d meter", num), false, true
	}

	// Road distances.
	switch {
	case strings.HasPrefix(upper, "HALVMARATON"):
		return "Halvmaraton", false, true
	case strings.HasPrefix(upper, "MARATON"):
		return "Maraton", false, true
	}
	if m := roadKmLabelRE.FindStringSubmatch(upper); m != nil {
		km, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d km gateløp", km), false, true
	}

	return "", false, false
}

func pick(gender record.Gender, men, women string) string {
	if gender == record.Men {
		return men
	}
	return women
}

func normalizeLabel(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}
