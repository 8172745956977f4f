package positions

import (
	"reflect"
	"testing"
)

func TestEligible(t *testing.T) {
	cases := []struct {
		positions []string
		slot      string
		want      bool
	}{
		{[]string{"2B"}, "MI", true},
		{[]string{"SS"}, "MI", true},
		{[]string{"1B"}, "MI", false},
		{[]string{"1B"}, "CI", true},
		{[]string{"3B"}, "CI", true},
		{[]string{"DH"}, "U", true},
		{[]string{"DH"}, "OF", false},
		{[]string{"SP"}, "P", true},
		{[]string{"RP"}, "P", true},
		{[]string{"SP"}, "U", false},
		{[]string{"C", "1B"}, "CI", true},
	}
	for _, tc := range cases {
		if got := Eligible(tc.positions, tc.slot); got != tc.want {
			t.Errorf("Eligible(%v, %q) = %v, want %v", tc.positions, tc.slot, got, tc.want)
		}
	}
}

func TestIsHitterIsPitcher(t *testing.T) {
	if !IsHitter([]string{"OF"}) || IsHitter([]string{"SP"}) {
		t.Fatal("hitter detection wrong")
	}
	if !IsPitcher([]string{"RP"}) || IsPitcher([]string{"C"}) {
		t.Fatal("pitcher detection wrong")
	}
	// Two-way eligibility reports both.
	both := []string{"DH", "SP"}
	if !IsHitter(both) || !IsPitcher(both) {
		t.Fatal("two-way player should read as both")
	}
}

func TestParsePositionStrings(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"1B/OF", []string{"1B", "OF"}},
		{"2B, SS", []string{"2B", "SS"}},
		{"SP|RP", []string{"SP", "RP"}},
		{"C", []string{"C"}},
		{"  ", nil},
	}
	for _, tc := range cases {
		if got := Parse(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeTeamAliases(t *testing.T) {
	cases := map[string]string{
		"TB":  "TBR",
		"CWS": "CHW",
		"kc":  "KCR",
		"ATH": "OAK",
		"NYY": "NYY",
		" bos ": "BOS",
	}
	for in, want := range cases {
		if got := NormalizeTeam(in); got != want {
			t.Errorf("NormalizeTeam(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsALTeam(t *testing.T) {
	for _, team := range []string{"NYY", "TB", "CWS", "SEA"} {
		if !IsALTeam(team) {
			t.Errorf("%s should be an AL club", team)
		}
	}
	for _, team := range []string{"NYM", "LAD", "ATL", ""} {
		if IsALTeam(team) {
			t.Errorf("%s should not be an AL club", team)
		}
	}
}
