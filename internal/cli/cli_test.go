package cli

import (
	"reflect"
	"testing"

	"github.com/pfrederiksen/friidrett-stats/internal/record"
)

func TestParseYears(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "2015", want: []int{2015}},
		{in: "2008,2010", want: []int{2008, 2010}},
		{in: "1997-2000", want: []int{1997, 1998, 1999, 2000}},
		{in: "2010, 2008-2010", want: []int{2008, 2009, 2010}},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "2020-2010", wantErr: true},
		{in: "1500", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseYears(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseYears(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseYears(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseYears(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in      string
		want    record.Gender
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "men", want: record.Men},
		{in: "Menn", want: record.Men},
		{in: "kvinner", want: record.Women},
		{in: "W", want: record.Women},
		{in: "both", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseGender(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseGender(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGender(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
