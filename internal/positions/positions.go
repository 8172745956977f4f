package positions

import "strings"

// SlotsFor maps a position to the roster slots it can fill.
var SlotsFor = map[string][]string{
	"C":  {"C", "U"},
	"1B": {"1B", "CI", "U"},
	"2B": {"2B", "MI", "U"},
	"3B": {"3B", "CI", "U"},
	"SS": {"SS", "MI", "U"},
	"OF": {"OF", "U"},
	"DH": {"U"},
	"SP": {"P"},
	"RP": {"P"},
	"P":  {"P"},
}

// EligibleFor maps a roster slot to the positions that can fill it.
var EligibleFor = map[string][]string{
	"C":  {"C"},
	"1B": {"1B"},
	"2B": {"2B"},
	"3B": {"3B"},
	"SS": {"SS"},
	"MI": {"2B", "SS"},
	"CI": {"1B", "3B"},
	"OF": {"OF"},
	"U":  {"C", "1B", "2B", "3B", "SS", "OF", "DH"},
	"P":  {"SP", "RP", "P"},
}

var hittingPositions = map[string]bool{
	"C": true, "1B": true, "2B": true, "3B": true, "SS": true, "OF": true, "DH": true,
}

var pitchingPositions = map[string]bool{
	"SP": true, "RP": true, "P": true,
}

// IsHitter reports whether any position is a hitting position.
func IsHitter(positions []string) bool {
	for _, p := range positions {
		if hittingPositions[p] {
			return true
		}
	}
	return false
}

// IsPitcher reports whether any position is a pitching position.
func IsPitcher(positions []string) bool {
	for _, p := range positions {
		if pitchingPositions[p] {
			return true
		}
	}
	return false
}

// Eligible reports whether a player with the given positions can fill a slot.
func Eligible(playerPositions []string, slot string) bool {
	for _, want := range EligibleFor[slot] {
		for _, have := range playerPositions {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Parse splits a position string like "1B/OF", "1B, OF" or "1B|OF".
func Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, sep := range []string{"/", ",", "|"} {
		if strings.Contains(s, sep) {
			parts := strings.Split(s, sep)
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, strings.ToUpper(p))
				}
			}
			return out
		}
	}
	return []string{strings.ToUpper(s)}
}
