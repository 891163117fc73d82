package eventname

import (
	"testing"

	"github.com/pfrederiksen/friidrett-stats/internal/perf"
	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		gender    record.Gender
		want      string
		handTimed bool
		ok        bool
	}{
		{"sprint", "100 meter", record.Men, "100 meter", false, true},
		{"sprint with noise", "100 meter - Elektronisk tid", record.Women, "100 meter", false, true},
		{"thousand with space", "10 000 meter", record.Men, "10000 meter", false, true},
		{"hand timed sprint", "100 meter (Håndtid)", record.Men, "100 meter (Håndtid)", true, true},
		{"manual marker", "60 meter Manuell tid", record.Men, "60 meter (Håndtid)", true, true},
		{"hurdles women", "100 meter hekk", record.Women, "100 meter hekk (84,0cm)", false, true},
		{"hurdles men", "110 meter hekk", record.Men, "110 meter hekk (106,7cm)", false, true},
		{"long hurdles men", "400 meter hekk", record.Men, "400 meter hekk (91,4cm)", false, true},
		{"hand timed hurdles", "110 meter hekk (Håndtid)", record.Men, "110 meter hekk (Håndtid)", true, true},
		{"steeplechase women", "3000 meter hinder", record.Women, "3000 meter hinder (76,2cm)", false, true},
		{"steeplechase men", "3000 meter hinder", record.Men, "3000 meter hinder (91,4cm)", false, true},
		{"high jump", "Høyde", record.Women, "Høyde", false, true},
		{"pole vault with english", "Stav (Pole Vault)", record.Men, "Stav", false, true},
		{"long jump", "Lengde", record.Men, "Lengde", false, true},
		{"triple jump", "Tresteg", record.Women, "Tresteg", false, true},
		{"shot men", "Kule", record.Men, "Kule 7,26kg", false, true},
		{"shot women", "Kule 4,0kg", record.Women, "Kule 4,0kg", false, true},
		{"discus women", "Diskos", record.Women, "Diskos 1,0kg", false, true},
		{"hammer men", "Slegge", record.Men, "Slegge 7,26kg/121,5cm", false, true},
		{"javelin women", "Spyd", record.Women, "Spyd 600gram", false, true},
		{"weight throw men", "Vektkast", record.Men, "VektKast 15,88Kg", false, true},
		{"super weight women", "Supervektkast", record.Women, "SuperVektKast 15,88Kg", false, true},
		{"decathlon", "10 kamp", record.Men, "10 kamp", false, true},
		{"heptathlon", "7-kamp", record.Women, "7 kamp", false, true},
		{"throws pentathlon", "Kast 5 kamp", record.Men, "Kast 5 Kamp (Slegge-Kule-Diskos-Spyd-Vektkast)", false, true},
		{"walk km", "Kappgang 10 km", record.Men, "Kappgang 10 km", false, true},
		{"walk meters", "Kappgang 3000 meter", record.Women, "Kappgang 3000 meter", false, true},
		{"half marathon", "Halvmaraton", record.Women, "Halvmaraton", false, true},
		{"marathon", "Maraton", record.Men, "Maraton", false, true},
		{"road race", "10 km gateløp", record.Men, "10 km gateløp", false, true},
		{"road race bare", "5 km", record.Women, "5 km gateløp", false, true},
		{"junk heading", "Resultater", record.Men, "", false, false},
		{"empty", "   ", record.Men, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, handTimed, ok := Canonical(tt.label, tt.gender)
			if ok != tt.ok {
				t.Fatalf("Canonical(%q, %s) ok = %v, want %v", tt.label, tt.gender, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q, %s) = %q, want %q", tt.label, tt.gender, got, tt.want)
			}
			if handTimed != tt.handTimed {
				t.Errorf("Canonical(%q, %s) handTimed = %v, want %v", tt.label, tt.gender, handTimed, tt.handTimed)
			}
		})
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	labels := []struct {
		label  string
		gender record.Gender
	}{
		{"100 meter hekk", record.Women},
		{"Kule", record.Men},
		{"Kappgang 10 km", record.Men},
		{"10 km gateløp", record.Women},
	}
	for _, l := range labels {
		first, _, ok := Canonical(l.label, l.gender)
		if !ok {
			t.Fatalf("Canonical(%q) not ok", l.label)
		}
		second, _, ok := Canonical(first, l.gender)
		if !ok || second != first {
			t.Errorf("Canonical(%q) not idempotent: %q -> %q", l.label, first, second)
		}
	}
}

func TestScoringCode(t *testing.T) {
	known := map[string]bool{
		"100m": true, "200m": true, "800m": true, "5000m": true,
		"100mH": true, "110mH": true, "400mH": true, "3000m SC": true,
		"Mile": true, "2 Miles": true,
		"Marathon": true, "HM": true, "10 km": true, "5 km": true,
		"LJ": true, "TJ": true, "HJ": true, "PV": true,
		"SP": true, "DT": true, "HT": true, "JT": true,
		"Hept.": true, "Dec.": true,
		"10km W": true, "3000mW": true, "5000mW": true, "20,000mW": true, "50,000mW": true,
	}

	tests := []struct {
		name      string
		canonical string
		gender    record.Gender
		want      string
		ok        bool
	}{
		{"sprint", "100 meter", record.Men, "100m", true},
		{"distance", "5000 meter", record.Women, "5000m", true},
		{"unknown distance", "600 meter", record.Men, "", false},
		{"hurdles women", "100 meter hekk (84,0cm)", record.Women, "100mH", true},
		{"hurdles men", "110 meter hekk (106,7cm)", record.Men, "110mH", true},
		{"steeplechase", "3000 meter hinder (91,4cm)", record.Men, "3000m SC", true},
		{"hand timed refused", "100 meter (Håndtid)", record.Men, "", false},
		{"mile", "1 Mile", record.Men, "Mile", true},
		{"marathon", "Maraton", record.Men, "Marathon", true},
		{"half marathon", "Halvmaraton", record.Women, "HM", true},
		{"road km", "10 km gateløp", record.Men, "10 km", true},
		{"long jump", "Lengde", record.Men, "LJ", true},
		{"high jump", "Høyde", record.Women, "HJ", true},
		{"shot standard men", "Kule 7,26kg", record.Men, "SP", true},
		{"shot rounded", "Kule 7,25kg", record.Men, "SP", true},
		{"shot youth weight", "Kule 5,0kg", record.Men, "", false},
		{"discus standard women", "Diskos 1,0kg", record.Women, "DT", true},
		{"hammer standard women", "Slegge 4,0kg/119,5cm", record.Women, "HT", true},
		{"javelin standard men", "Spyd 800gram", record.Men, "JT", true},
		{"javelin youth", "Spyd 700gram", record.Men, "", false},
		{"heptathlon women", "7 kamp", record.Women, "Hept.", true},
		{"heptathlon men refused", "7 kamp", record.Men, "", false},
		{"decathlon men", "10 kamp", record.Men, "Dec.", true},
		{"walk km", "Kappgang 10 km", record.Men, "10km W", true},
		{"walk km via meters", "Kappgang 20 km", record.Men, "20,000mW", true},
		{"walk meters short", "Kappgang 3000 meter", record.Women, "3000mW", true},
		{"walk meters long", "Kappgang 50000 meter", record.Men, "50,000mW", true},
		{"throws pentathlon", "Kast 5 Kamp (Slegge-Kule-Diskos-Spyd-Vektkast)", record.Men, "", false},
		{"empty", "", record.Men, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScoringCode(tt.canonical, tt.gender, known)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ScoringCode(%q, %s) = %q, %v, want %q, %v",
					tt.canonical, tt.gender, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInferOrientation(t *testing.T) {
	tests := []struct {
		label string
		want  perf.Orientation
	}{
		{"100 meter", perf.Lower},
		{"100 meter hekk (84,0cm)", perf.Lower},
		{"1 Mile", perf.Lower},
		{"Maraton", perf.Lower},
		{"Halvmaraton", perf.Lower},
		{"10 km gateløp", perf.Lower},
		{"Kappgang 10 km", perf.Lower},
		{"Kule 7,26kg", perf.Higher},
		{"Diskos 1,0kg", perf.Higher},
		{"Lengde", perf.Higher},
		{"Høyde", perf.Higher},
		{"10 kamp", perf.Higher},
		{"", perf.Higher},
	}
	for _, tt := range tests {
		if got := InferOrientation(tt.label); got != tt.want {
			t.Errorf("InferOrientation(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
